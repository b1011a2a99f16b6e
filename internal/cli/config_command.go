// filepath: internal/cli/config_command.go
package cli

import (
	"fmt"
	"os"
	"servicehub/internal/config"
	"servicehub/internal/logging"

	"github.com/spf13/cobra"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file tools",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with every default value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd.Flags())
		if len(args) == 1 {
			path = args[0]
		}
		return writeDefaultConfig(path, forceInit)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file.")
	configCmd.AddCommand(configInitCmd)
	RootCmd.AddCommand(configCmd)
}

func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveConfig(path, config.Defaults()); err != nil {
		return err
	}
	logging.Log.Infof("Default configuration written to %s.", path)
	return nil
}
