package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/shifr/internal/configs"
	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"github.com/PolarWolf314/shifr/internal/ui"
	"github.com/PolarWolf314/shifr/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configPath is the value of the global --config flag. Empty means the default location.
var configPath string

// BindGlobalFlags registers flags shared by every command on the root command's flag set.
func BindGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "path to the config file (default $XDG_CONFIG_HOME/shifr/config.toml)")
}

// SetConfigPath sets the config file path for testing.
func SetConfigPath(path string) {
	configPath = path
}

// resolveConfigPath returns the --config value or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return configs.DefaultPath()
}

// loadConfig loads the config file and environment overrides.
func loadConfig() (*configs.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Loading config from %s", path)
	return configs.Load(path)
}

// resolveKey returns the key for kind from the --key flag, the environment or
// the config file, in that order. An empty string means no key was found.
func resolveKey(cmd *cobra.Command, kind cipherKind, flags *cipherFlags) (string, error) {
	if cmd.Flags().Changed("key") {
		Logger.Debugf("Using key from --key flag")
		return flags.key, nil
	}

	config, err := loadConfig()
	if err != nil {
		return "", err
	}
	key := kind.configKey(config)
	if key != "" {
		Logger.Debugf("Using key from config or environment")
	}
	return key, nil
}

// input is one text to process. Source is the file it came from, empty for
// arguments and stdin.
type input struct {
	Source string
	Text   string
}

// collectInputs gathers texts from positional args, --files patterns or stdin,
// using the first source present.
func collectInputs(cmd *cobra.Command, args []string, flags *cipherFlags) ([]input, error) {
	if len(args) > 0 {
		if len(flags.files) > 0 {
			Logger.Warnf("Ignoring --files %v: text was given as arguments", flags.files)
		}
		Logger.Debugf("Reading text from %d argument(s)", len(args))
		return []input{{Text: strings.Join(args, " ")}}, nil
	}

	if len(flags.files) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		files, err := utils.ResolveFiles(flags.files, wd)
		if err != nil {
			return nil, err
		}
		Logger.Debugf("Resolved %d file(s) from patterns %v:%s", len(files), flags.files, utils.FormatPaths(files, wd))

		inputs := make([]input, 0, len(files))
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", f, err)
			}
			inputs = append(inputs, input{Source: f, Text: utils.TrimNewline(string(data))})
		}
		return inputs, nil
	}

	Logger.Debugf("Reading text from stdin")
	text, err := utils.ReadInput(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return []input{{Text: text}}, nil
}

// noKeyError explains where a key can come from.
func noKeyError(kind cipherKind) error {
	return fmt.Errorf("%w (hint: pass --key, set %s or add it to the [%s] section of the config)",
		kerrors.ErrEmptyKey, kind.envVar, kind.name)
}

// startSpinner creates and starts a spinner on the command's stderr when not
// in verbose or debug mode and stderr is a terminal.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it
// to the command's stdout.
func startSpinner(cmd *cobra.Command, message string, flags *cipherFlags) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	w := cmd.ErrOrStderr()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	active := !flags.verbose && !flags.debug && utils.IsTerminalWriter(w)
	if active {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if active {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}

// readLine reads one line from r without its line ending. io.EOF is
// returned only when nothing at all was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return utils.TrimNewline(line), nil
	}
	if err != nil {
		return "", err
	}
	return utils.TrimNewline(line), nil
}
