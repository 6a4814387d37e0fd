package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/shifr/cmd"
	"github.com/PolarWolf314/shifr/internal/ui"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shifr",
	Short: "shifr - classical ciphers for the command line.",
	Long: `shifr encrypts and decrypts text with two classical ciphers:

  - a route transposition cipher keyed by a number of columns
  - the Gronsfeld cipher over the 33-letter Russian alphabet, keyed by a word

Usage:
  shifr <command> [flags]

Available Commands:
  route      Route transposition cipher
  gronsfeld  Gronsfeld cipher
  config     Manage default keys and settings

Run 'shifr help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to shifr! Run 'shifr --help' to see available commands.")
	},
}

func init() {
	cmd.BindGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(cmd.RouteCmd)
	rootCmd.AddCommand(cmd.GronsfeldCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:"), err)
		os.Exit(1)
	}
}
