// filepath: internal/cli/migrate.go
package cli

import (
	"fmt"
	"servicehub/internal/config"
	"servicehub/internal/logging"
	"servicehub/internal/repository"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Manage the SQLite schema version. Use subcommands 'up', 'down', or 'status'.`,
}

func newMigrationCmd(command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cfg, command)
		},
	}
}

func init() {
	RootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(newMigrationCmd("up", "Migrate the database to the most recent version"))
	migrateCmd.AddCommand(newMigrationCmd("down", "Roll back the database by one version"))
	migrateCmd.AddCommand(newMigrationCmd("status", "Dump the migration status for the current DB"))
}

func runMigration(c *config.Config, command string) error {
	if c.Database.Backend != config.BackendSQLite {
		return fmt.Errorf("migrations require the %s backend, configured: %s", config.BackendSQLite, c.Database.Backend)
	}

	db, err := repository.Open(c.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := repository.Migrate(db, command); err != nil {
		return err
	}

	logging.Log.Info("Migration operation completed successfully.")
	return nil
}
