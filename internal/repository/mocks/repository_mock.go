package mocks

import (
	"context"
	"servicehub/internal/models"
	"servicehub/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repository.Repository
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Services(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockRepository) Service(ctx context.Context, id uint32) (models.Service, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Service), args.Error(1)
}
