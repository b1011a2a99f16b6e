package repository

import (
	"context"
	"servicehub/internal/shared"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_ServesRepeatedReadsFromCache(t *testing.T) {
	ctx := context.Background()
	backend := newCountingRepository(NewInMemoryRepository(sampleServices()))
	repo := NewCached(backend, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		svc, err := repo.Service(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Locate Us", svc.Name)

		services, err := repo.Services(ctx)
		require.NoError(t, err)
		assert.Len(t, services, 2)
	}

	assert.Equal(t, 1, backend.calls(1))
	assert.Equal(t, 1, backend.listCalls())
}

func TestCached_DoesNotStoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing", func(t *testing.T) {
		backend := newCountingRepository(NewInMemoryRepository(sampleServices()))
		repo := NewCached(backend, time.Minute, time.Minute)

		for i := 0; i < 3; i++ {
			_, err := repo.Service(ctx, 3)
			assert.ErrorIs(t, err, shared.ErrMissing)
		}
		assert.Equal(t, 3, backend.calls(3))
	})

	t.Run("Server Error", func(t *testing.T) {
		broken := setupSeededDB(t)
		require.NoError(t, broken.Close())
		backend := newCountingRepository(broken)
		repo := NewCached(backend, time.Minute, time.Minute)

		for i := 0; i < 2; i++ {
			_, err := repo.Services(ctx)
			assert.ErrorIs(t, err, shared.ErrServerError)
			_, err = repo.Service(ctx, 1)
			assert.ErrorIs(t, err, shared.ErrServerError)
		}
		assert.Equal(t, 2, backend.listCalls())
		assert.Equal(t, 2, backend.calls(1))
	})
}

func TestCached_ReturnsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCached(NewInMemoryRepository(sampleServices()), time.Minute, time.Minute)

	first, err := repo.Services(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.Services(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Locate Us", second[0].Name)
}

func TestCached_ExpiryAndFlush(t *testing.T) {
	ctx := context.Background()
	backend := newCountingRepository(NewInMemoryRepository(sampleServices()))
	repo := NewCached(backend, 10*time.Millisecond, time.Minute)

	_, err := repo.Service(ctx, 2)
	require.NoError(t, err)
	time.Sleep(250 * time.Millisecond)
	_, err = repo.Service(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.calls(2))

	repo.Flush()
	_, err = repo.Service(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, backend.calls(2))
}
