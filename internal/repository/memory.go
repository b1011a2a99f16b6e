package repository

import (
	"context"
	"fmt"
	"servicehub/internal/models"
	"servicehub/internal/shared"
)

// InMemoryRepository serves a fixed set of records held in memory.
// It has no I/O and therefore never reports ErrServerError.
type InMemoryRepository struct {
	data []models.Service
}

var (
	_ Repository = InMemoryRepository{}
	_ Repository = (*InMemoryRepository)(nil)
)

// NewInMemoryRepository copies services; later changes to the argument are not observed.
// When several records share an id only the first one is kept.
func NewInMemoryRepository(services []models.Service) InMemoryRepository {
	seen := make(map[uint32]struct{}, len(services))
	data := make([]models.Service, 0, len(services))
	for _, s := range services {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		data = append(data, s)
	}
	return InMemoryRepository{data: data}
}

// Services returns a copy of all records in insertion order.
func (r InMemoryRepository) Services(ctx context.Context) ([]models.Service, error) {
	return cloneServices(r.data), nil
}

// Service returns the first record with a matching id.
func (r InMemoryRepository) Service(ctx context.Context, id uint32) (models.Service, error) {
	for _, s := range r.data {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, fmt.Errorf("service %d: %w", id, shared.ErrMissing)
}

// Len reports the number of records.
func (r InMemoryRepository) Len() int {
	return len(r.data)
}
