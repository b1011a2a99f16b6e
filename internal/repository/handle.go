package repository

import (
	"context"
	"servicehub/internal/models"
)

// Handle is a shared handle on a Repository. Any number of owners can hold
// the same *Handle; every call is forwarded unchanged to the held backend.
//
// Pointers to backends with value receivers (e.g. *InMemoryRepository) and
// plain interface values already satisfy Repository, so Handle is only
// needed when a single owner-independent value has to be passed around.
type Handle struct {
	repo Repository
}

var _ Repository = (*Handle)(nil)

// Share wraps r in a Handle.
func Share(r Repository) *Handle {
	return &Handle{repo: r}
}

func (h *Handle) Services(ctx context.Context) ([]models.Service, error) {
	return h.repo.Services(ctx)
}

func (h *Handle) Service(ctx context.Context, id uint32) (models.Service, error) {
	return h.repo.Service(ctx, id)
}
