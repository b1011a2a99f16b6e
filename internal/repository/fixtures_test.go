package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"servicehub/internal/config"
	"servicehub/internal/models"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleServices() []models.Service {
	return []models.Service{
		{ID: 1, Name: "Locate Us", Description: "Awesomeness is HERE!", Versions: 3},
		{ID: 2, Name: "Contact Us", Description: "How can I find you?!", Versions: 2},
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test_services.db"),
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestDB returns a migrated, empty SQLite repository.
func setupTestDB(t *testing.T) *SQLRepository {
	t.Helper()
	db := openTestDB(t)
	require.NoError(t, Migrate(db, "up"), "Failed to apply test migrations")
	return NewSQLRepository(db)
}

// setupSeededDB returns a migrated repository holding sampleServices.
func setupSeededDB(t *testing.T) *SQLRepository {
	t.Helper()
	repo := setupTestDB(t)
	n, err := repo.Seed(context.Background(), sampleServices())
	require.NoError(t, err)
	require.Equal(t, len(sampleServices()), n)
	return repo
}

// countingRepository records how often each operation reached it.
type countingRepository struct {
	Repository

	mu       sync.Mutex
	services int
	service  map[uint32]int
}

func newCountingRepository(next Repository) *countingRepository {
	return &countingRepository{Repository: next, service: map[uint32]int{}}
}

func (c *countingRepository) Services(ctx context.Context) ([]models.Service, error) {
	c.mu.Lock()
	c.services++
	c.mu.Unlock()
	return c.Repository.Services(ctx)
}

func (c *countingRepository) Service(ctx context.Context, id uint32) (models.Service, error) {
	c.mu.Lock()
	c.service[id]++
	c.mu.Unlock()
	return c.Repository.Service(ctx, id)
}

func (c *countingRepository) calls(id uint32) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.service[id]
}

func (c *countingRepository) listCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.services
}
