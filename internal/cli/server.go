// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"servicehub/internal/api/handlers"
	"servicehub/internal/config"
	"servicehub/internal/httpserver"
	"servicehub/internal/initconfig"
	"servicehub/internal/logging"
	"servicehub/internal/metrics"
	"servicehub/internal/repository"
	"servicehub/internal/services"
	"syscall"
)

// buildRepository assembles the configured backend wrapped in the logging
// decorator and, when enabled, the read cache. The returned close function
// releases the backend's resources.
func buildRepository(c *config.Config) (repository.Repository, func() error, error) {
	var (
		repo    repository.Repository
		closeFn = func() error { return nil }
	)

	switch c.Database.Backend {
	case config.BackendMemory:
		seed, err := initconfig.Load(c.SeedPath)
		if err != nil {
			return nil, nil, err
		}
		mem := repository.NewInMemoryRepository(seed)
		logging.Log.Infof("Using in-memory repository with %d service(s).", mem.Len())
		repo = mem
	case config.BackendSQLite:
		sqlRepo, err := openSQLRepository(c)
		if err != nil {
			return nil, nil, err
		}
		logging.Log.Infof("Using SQLite repository at %s.", c.Database.Path)
		repo, closeFn = sqlRepo, sqlRepo.Close
	default:
		return nil, nil, fmt.Errorf("unknown database backend: %q", c.Database.Backend)
	}

	repo = repository.WithLogging(repo, logging.Log, c.Database.Backend)
	if c.Cache.Enabled {
		logging.Log.Infof("Repository read cache enabled (ttl %s).", c.CacheTTL)
		repo = repository.NewCached(repo, c.CacheTTL, c.CacheCleanupInterval)
	}
	return repo, closeFn, nil
}

// openSQLRepository opens the database, bootstraps a fresh schema when
// auto_migrate is set and refuses an outdated one.
func openSQLRepository(c *config.Config) (*repository.SQLRepository, error) {
	db, err := repository.Open(c.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	if c.Database.AutoMigrate {
		if err := repository.EnsureSchemaBootstrapped(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to bootstrap database: %w", err)
		}
	}

	if err := repository.ValidateSchema(db); err != nil {
		db.Close()
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return nil, err
	}

	return repository.NewSQLRepository(db), nil
}

// newHTTPServer wires the repository into the handlers and router.
func newHTTPServer(c *config.Config, repo repository.Repository) *http.Server {
	m := metrics.New()
	infoService := services.NewInfoService(Version, StartTime, c.Database.Backend)
	h := handlers.NewHandlers(repository.Share(repo), infoService, m)

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port),
		Handler: httpserver.SetupRouter(h, m, c),
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer(c *config.Config) error {
	repo, closeRepo, err := buildRepository(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logging.Log.Warnf("Failed to close repository: %v", err)
		}
	}()

	srv := newHTTPServer(c, repo)

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		logging.Log.Infof("Server starting on %s (backend: %s)", srv.Addr, c.Database.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-stop:
	}
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
