// filepath: internal/cli/seed.go
package cli

import (
	"context"
	"fmt"
	"servicehub/internal/config"
	"servicehub/internal/initconfig"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the seed_path records into the SQLite database",
	Long: `Reads the [[service]] records of the configured seed file (or the built-in
catalog when seed_path is empty) and upserts them into the services table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runSeed(cmd.Context(), cfg)
		return err
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context, c *config.Config) (int, error) {
	if c.Database.Backend != config.BackendSQLite {
		return 0, fmt.Errorf("seeding requires the %s backend, configured: %s", config.BackendSQLite, c.Database.Backend)
	}

	repo, err := openSQLRepository(c)
	if err != nil {
		return 0, err
	}
	defer repo.Close()

	return initconfig.Run(ctx, repo, c.SeedPath)
}
