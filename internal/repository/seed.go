package repository

import (
	"context"
	"fmt"
	"servicehub/internal/models"
)

// Seed inserts or replaces records in the services table inside one
// transaction. It sits outside the Repository contract: the catalog itself is
// read-only, this is how an operator populates the table.
func (s *SQLRepository) Seed(ctx context.Context, services []models.Service) (int, error) {
	if len(services) == 0 {
		return 0, nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, svc := range services {
		if svc.Name == "" {
			return 0, fmt.Errorf("service %d: name must not be empty", svc.ID)
		}
		query, args, err := s.Builder.Insert(servicesTable).
			Options("OR REPLACE").
			Columns(serviceColumns...).
			Values(svc.ID, svc.Name, svc.Description, svc.Versions).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build insert query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to insert service %d: %w", svc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(services), nil
}
