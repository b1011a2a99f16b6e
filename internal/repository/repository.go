// Package repository provides read access to the service catalog independent
// of where the records live.
package repository

import (
	"context"
	"servicehub/internal/models"
)

// Repository is the read-only contract every backend implements.
//
// Implementations report failures only as shared.ErrMissing or
// shared.ErrServerError (optionally wrapped); callers classify them with
// errors.Is. Both operations are safe for concurrent use.
type Repository interface {
	// Services returns every record in the backend's own stable order.
	// An empty catalog is an empty slice, never ErrMissing.
	Services(ctx context.Context) ([]models.Service, error)

	// Service returns the record with the given id, ErrMissing when there is
	// none, or ErrServerError when the backend cannot answer.
	Service(ctx context.Context, id uint32) (models.Service, error)
}

// cloneServices returns a copy that shares no backing array with in.
func cloneServices(in []models.Service) []models.Service {
	out := make([]models.Service, len(in))
	copy(out, in)
	return out
}
