// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"servicehub/internal/config"
	"servicehub/internal/logging"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SERVICEHUB"

// Global config object populated by flags/env/file
var cfg *config.Config

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"host":       "server.host",
	"port":       "server.port",
	"backend":    "database.backend",
	"db-path":    "database.path",
	"cache":      "cache.enabled",
	"seed-path":  "seed_path",
	"access-log": "logging.access_log",
}

func registerFlags(cmd *cobra.Command) {
	d := config.Defaults()
	f := cmd.PersistentFlags()
	f.String("config_path", "config.toml", "Path to the base configuration file. (Env: SERVICEHUB_CONFIG_PATH)")
	f.String("log-level", d.Logging.Level, "Logging level (trace, debug, info, warn, error). (Env: SERVICEHUB_LOGGING_LEVEL)")
	f.Bool("access-log", d.Logging.AccessLog, "Log every HTTP request. (Env: SERVICEHUB_LOGGING_ACCESS_LOG)")
	f.String("host", d.Server.Host, "Address the HTTP server binds to. (Env: SERVICEHUB_SERVER_HOST)")
	f.Int("port", d.Server.Port, "Port for the HTTP server. (Env: SERVICEHUB_SERVER_PORT)")
	f.String("backend", d.Database.Backend, "Repository backend: sqlite or memory. (Env: SERVICEHUB_DATABASE_BACKEND)")
	f.String("db-path", d.Database.Path, "Path to the SQLite database file. (Env: SERVICEHUB_DATABASE_PATH)")
	f.Bool("cache", d.Cache.Enabled, "Cache successful repository reads. (Env: SERVICEHUB_CACHE_ENABLED)")
	f.String("seed-path", d.SeedPath, "TOML file with [[service]] records. (Env: SERVICEHUB_SEED_PATH)")
}

// initializeConfig loads, validates and applies the configuration.
func initializeConfig(cmd *cobra.Command) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := loaded.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	cfg = loaded

	logging.Init(cfg.Logging.Level)
	return nil
}

// loadConfig merges defaults, the config file, SERVICEHUB_* environment
// variables and explicitly set flags, in increasing order of precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	setDefaults(v, config.Defaults())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	path := configPath(cmd.Flags())
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
		// Missing file: rely on defaults, env and flags.
	}

	loaded := &config.Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return loaded, nil
}

// configPath resolves the config file location. An explicit flag wins over
// SERVICEHUB_CONFIG_PATH.
func configPath(flags *pflag.FlagSet) string {
	path, _ := flags.GetString("config_path")
	if flags.Changed("config_path") {
		return path
	}
	if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" {
		return envPath
	}
	if path == "" {
		return "config.toml"
	}
	return path
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, d *config.Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("database.backend", d.Database.Backend)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.auto_migrate", d.Database.AutoMigrate)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.access_log", d.Logging.AccessLog)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)
	v.SetDefault("seed_path", d.SeedPath)
}
