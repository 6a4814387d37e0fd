package cmd

import (
	"fmt"

	"github.com/PolarWolf314/shifr/internal/ui"

	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration commands will use: the config file with
environment overrides applied. Unset keys are shown as (not set).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		path, err := resolveConfigPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve config path: %w", err)
		}
		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n\n", ui.Path.Sprint(path))
		fmt.Fprintf(out, "route.key:     %s\n", showKey(config.Route.Key))
		fmt.Fprintf(out, "gronsfeld.key: %s\n", showKey(config.Gronsfeld.Key))
		fmt.Fprintf(out, "shell.banner:  %t\n", config.Shell.Banner)
		return nil
	},
}

func showKey(key string) string {
	if key == "" {
		return ui.Muted.Sprint("not set")
	}
	return ui.Key.Sprint(key)
}
