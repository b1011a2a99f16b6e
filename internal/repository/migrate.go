package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"servicehub/internal/db/migrations"
	"servicehub/internal/logging"
	"sync"

	"github.com/pressly/goose/v3"
)

// gooseMu serializes access to goose's package-level state (base FS, dialect, logger).
var gooseMu sync.Mutex

// The embedded migrations live at the root of migrations.FS.
const migrationsDir = "."

func configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against db.
func Migrate(db *sql.DB, command string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configureGoose(); err != nil {
		return err
	}

	logging.Log.Infof("Running migration command: %s", command)

	var gooseErr error
	switch command {
	case "up":
		gooseErr = goose.Up(db, migrationsDir)
	case "down":
		gooseErr = goose.Down(db, migrationsDir)
	case "status":
		gooseErr = goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}

	if gooseErr != nil {
		return fmt.Errorf("migration failed: %w", gooseErr)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a database that has no applied migration
// (version 0) to the latest version. A database with any applied migration is
// left alone; upgrading it is an explicit 'migrate up'.
func EnsureSchemaBootstrapped(db *sql.DB) error {
	current, err := lockedSchemaVersion(db)
	if err != nil {
		return err
	}
	if current > 0 {
		return nil
	}

	logging.Log.Info("Fresh database detected, applying migrations.")
	return Migrate(db, "up")
}

// ValidateSchema fails when the database is behind the embedded migrations.
// It never writes to the database.
func ValidateSchema(db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configureGoose(); err != nil {
		return err
	}

	current, err := schemaVersion(db)
	if err != nil {
		return err
	}

	known, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	latest, err := known.Last()
	if err != nil {
		return fmt.Errorf("failed to determine latest migration: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("database schema is outdated (version %d, latest %d): run 'servicehub migrate up'", current, latest.Version)
	}
	return nil
}

func lockedSchemaVersion(db *sql.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configureGoose(); err != nil {
		return 0, err
	}
	return schemaVersion(db)
}

// schemaVersion reports the applied goose version. A database without a
// version table is at version 0; goose.GetDBVersion would create the table,
// so it is only consulted once the table exists. Callers hold gooseMu.
func schemaVersion(db *sql.DB) (int64, error) {
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", goose.TableName()).Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to inspect database: %w", err)
	}

	current, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return current, nil
}
