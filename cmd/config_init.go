package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/shifr/internal/configs"
	"github.com/PolarWolf314/shifr/internal/ui"

	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with default settings",
	Long: `Writes a config file with default settings to the config location
(or the path given with --config). An existing file is left alone unless
--force is given.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path, err := resolveConfigPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve config path: %w", err)
		}
		Logger.Debugf("Config path: %s, force: %t", path, configInitForce)

		if _, err := configs.Init(path, configInitForce); err != nil {
			if errors.Is(err, configs.ErrConfigExists) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Config already exists at %s\n%s Run %s to overwrite it\n",
					ui.Error.Sprint("✗"), ui.Path.Sprint(path),
					ui.Info.Sprint("→"), ui.Command.Sprint("shifr config init --force"))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to write config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Config written to %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(path))
		return nil
	},
}
