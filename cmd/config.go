package cmd

import (
	logger "github.com/PolarWolf314/shifr/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configVerbose bool
	configDebug   bool

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage shifr configuration",
		Long: `Provides commands for managing default keys and shell settings.

Use these commands to:
  - Create a config file with default settings (config init)
  - Show the effective configuration, environment included (config show)

Examples:
  # Create the default config file
  shifr config init

  # Show the configuration a command would use
  shifr config show`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: configVerbose || configDebug,
				Debug:   configDebug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	resetConfigInitState()
	resetConfigCobraFlagState()
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	ConfigCmd.PersistentFlags().VisitAll(reset)
	for _, sub := range ConfigCmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}
