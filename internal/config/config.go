// filepath: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"servicehub/internal/shared"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Supported repository backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server" mapstructure:"server"`
	Database DatabaseConfig `toml:"database" mapstructure:"database"`
	Logging  LoggingConfig  `toml:"logging" mapstructure:"logging"`
	Cache    CacheConfig    `toml:"cache" mapstructure:"cache"`

	// SeedPath points to a TOML file with [[service]] records.
	SeedPath string `toml:"seed_path" mapstructure:"seed_path"`

	ShutdownTimeout      time.Duration `toml:"-" mapstructure:"-"` // Runtime computed value
	CacheTTL             time.Duration `toml:"-" mapstructure:"-"` // Runtime computed value
	CacheCleanupInterval time.Duration `toml:"-" mapstructure:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host            string `toml:"host" mapstructure:"host"`
	Port            int    `toml:"port" mapstructure:"port" validate:"gt=0,lt=65536"`
	ShutdownTimeout string `toml:"shutdown_timeout" mapstructure:"shutdown_timeout"` // e.g. "30s"
}

// DatabaseConfig holds the repository backend configuration.
type DatabaseConfig struct {
	Backend      string `toml:"backend" mapstructure:"backend"`
	Path         string `toml:"path" mapstructure:"path"`
	MaxOpenConns int    `toml:"max_open_conns" mapstructure:"max_open_conns" validate:"gte=0"`
	AutoMigrate  bool   `toml:"auto_migrate" mapstructure:"auto_migrate"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level     string `toml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error"`
	AccessLog bool   `toml:"access_log" mapstructure:"access_log"`
}

// CacheConfig holds the read cache settings.
type CacheConfig struct {
	Enabled         bool   `toml:"enabled" mapstructure:"enabled"`
	TTL             string `toml:"ttl" mapstructure:"ttl"`
	CleanupInterval string `toml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// Defaults returns a configuration with every value set to its default.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ShutdownTimeout: "30s",
		},
		Database: DatabaseConfig{
			Backend:      BackendSQLite,
			Path:         "services.db",
			MaxOpenConns: 16,
			AutoMigrate:  true,
		},
		Logging: LoggingConfig{
			Level:     "info",
			AccessLog: true,
		},
		Cache: CacheConfig{
			Enabled:         false,
			TTL:             "30s",
			CleanupInterval: "1m",
		},
	}
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values
// and rejects values the server cannot run with.
func (c *Config) ParseAndValidate() error {
	c.Database.Backend = strings.ToLower(strings.TrimSpace(c.Database.Backend))
	switch c.Database.Backend {
	case BackendSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the %s backend", BackendSQLite)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown database.backend: %q", c.Database.Backend)
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if err := validate.Struct(c); err != nil {
		return describe(err)
	}

	var err error
	if c.ShutdownTimeout, err = shared.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid server.shutdown_timeout: %w", err)
	}
	if c.CacheTTL, err = shared.ParseDuration(c.Cache.TTL); err != nil {
		return fmt.Errorf("invalid cache.ttl: %w", err)
	}
	if c.CacheCleanupInterval, err = shared.ParseDuration(c.Cache.CleanupInterval); err != nil {
		return fmt.Errorf("invalid cache.cleanup_interval: %w", err)
	}
	if c.Cache.Enabled && c.CacheTTL == 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled")
	}

	return nil
}

var validate = newValidator()

// newValidator reports fields by their configuration key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describe turns the first validation failure into "invalid <key>: <value>".
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	key := fe.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}
	return fmt.Errorf("invalid %s: %v (must satisfy %s=%s)", key, fe.Value(), fe.Tag(), fe.Param())
}
