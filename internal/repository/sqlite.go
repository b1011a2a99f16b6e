package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"servicehub/internal/config"
	"servicehub/internal/models"
	"servicehub/internal/shared"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	driverName    = "sqlite"
	servicesTable = "services"
)

var serviceColumns = []string{"id", "name", "description", "versions"}

// SQLRepository reads the catalog from the services table of a SQLite database.
type SQLRepository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

var _ Repository = (*SQLRepository)(nil)

// NewSQLRepository wraps an existing pool. It performs no I/O.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Open creates the connection pool for cfg. sql.Open connects lazily, so an
// unreachable file only surfaces on the first query.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(driverName, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	return db, nil
}

// Close releases the pool.
func (s *SQLRepository) Close() error {
	return s.DB.Close()
}

// Services lists all records ordered by id.
func (s *SQLRepository) Services(ctx context.Context) ([]models.Service, error) {
	query, args, err := s.Builder.Select(serviceColumns...).
		From(servicesTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, s.serverError("services", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.serverError("services", err)
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, s.serverError("services", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, s.serverError("services", err)
	}
	return services, nil
}

// Service fetches the record with the given id.
func (s *SQLRepository) Service(ctx context.Context, id uint32) (models.Service, error) {
	query, args, err := s.Builder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Service{}, s.serverError("service", err)
	}

	svc, err := scanService(s.DB.QueryRowContext(ctx, query, args...))
	if err == nil {
		return svc, nil
	}
	// The query ran and matched nothing: a business outcome, not a fault.
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, fmt.Errorf("service %d: %w", id, shared.ErrMissing)
	}
	return models.Service{}, s.serverError("service", err)
}

// serverError collapses a driver failure into ErrServerError. The cause is
// kept as text only, so no driver error value is reachable by callers.
func (s *SQLRepository) serverError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %v", shared.ErrServerError, operation, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (models.Service, error) {
	var svc models.Service
	if err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Versions); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}
