package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/shifr/internal/cipher"
	"github.com/PolarWolf314/shifr/internal/configs"
	logger "github.com/PolarWolf314/shifr/internal/logging"
	"github.com/PolarWolf314/shifr/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Logger is set by the PersistentPreRun of the running command group.
var Logger logger.Logger

// cipherKind describes one cipher to the command layer.
type cipherKind struct {
	name      string
	title     string
	keyHint   string
	envVar    string
	newCipher cipher.Factory
	configKey func(*configs.Config) string

	// selfTest enables the built-in self-test in the shell and as a subcommand.
	selfTest bool
}

// cipherFlags holds the flag values of one command group.
type cipherFlags struct {
	key     string
	verbose bool
	debug   bool
	files   []string
}

// direction selects Encrypt or Decrypt.
type direction int

const (
	encrypt direction = iota
	decrypt
)

func (d direction) String() string {
	if d == encrypt {
		return "encrypt"
	}
	return "decrypt"
}

func (d direction) apply(c cipher.Cipher, text string) (string, error) {
	if d == encrypt {
		return c.Encrypt(text)
	}
	return c.Decrypt(text)
}

// newCipherGroup builds the parent command of a cipher and wires its flags and logger.
func newCipherGroup(kind cipherKind, flags *cipherFlags, long string) *cobra.Command {
	group := &cobra.Command{
		Use:   kind.name,
		Short: kind.title,
		Long:  long,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: flags.verbose || flags.debug,
				Debug:   flags.debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", kind.name, flags.verbose, flags.debug)
		},
	}

	group.PersistentFlags().StringVarP(&flags.key, "key", "k", "", kind.keyHint)
	group.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	group.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug output")

	group.AddCommand(newTransformCmd(kind, flags, encrypt))
	group.AddCommand(newTransformCmd(kind, flags, decrypt))
	group.AddCommand(newShellCmd(kind, flags))
	if kind.selfTest {
		group.AddCommand(newSelfTestCmd(kind, flags))
	}
	return group
}

// newTransformCmd builds the encrypt or decrypt subcommand of a cipher.
func newTransformCmd(kind cipherKind, flags *cipherFlags, dir direction) *cobra.Command {
	var short, example string
	if dir == encrypt {
		short = "Encrypt open text; non-letters are dropped and letters upper cased"
		example = fmt.Sprintf("  shifr %s encrypt -k %s \"Привет, мир!\"", kind.name, kind.exampleKey())
	} else {
		short = "Decrypt cipher text made of uppercase letters only"
		example = fmt.Sprintf("  echo СРЗДЕС | shifr %s decrypt -k %s", kind.name, kind.exampleKey())
	}

	c := &cobra.Command{
		Use:          dir.String() + " [text...]",
		Short:        short,
		Example:      example + fmt.Sprintf("\n  shifr %s %s -k %s --files 'notes/**/*.txt'", kind.name, dir, kind.exampleKey()),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, kind, flags, dir)
		},
	}
	c.Flags().StringSliceVarP(&flags.files, "files", "f", nil, "process files matching these paths or globs (** supported)")
	return c
}

// runTransform encrypts or decrypts every input and prints the results.
func runTransform(cmd *cobra.Command, args []string, kind cipherKind, flags *cipherFlags, dir direction) error {
	Logger.Infof("Starting %s %s command", kind.name, dir)

	key, err := resolveKey(cmd, kind, flags)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to resolve key: %w", err)
	}
	if key == "" {
		return noKeyError(kind)
	}

	c, err := kind.newCipher(key)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to initialize %s cipher: %w", kind.name, err)
	}
	Logger.Debugf("Cipher initialized with key %s", ui.Key.Sprint(key))

	inputs, err := collectInputs(cmd, args, flags)
	if err != nil {
		return err
	}

	// A single text is printed bare so the output can be piped.
	if len(inputs) == 1 && inputs[0].Source == "" {
		out, err := dir.apply(c, inputs[0].Text)
		if err != nil {
			return fmt.Errorf("%s failed: %w", dir, err)
		}
		Logger.Infof("Processed %d characters", len([]rune(inputs[0].Text)))
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	return runBatch(cmd, inputs, c, flags, dir)
}

// runBatch processes files behind a spinner and reports per-file results.
func runBatch(cmd *cobra.Command, inputs []input, c cipher.Cipher, flags *cipherFlags, dir direction) error {
	spinner, cleanup := startSpinner(cmd, fmt.Sprintf("Processing %d file(s)...", len(inputs)), flags)
	defer cleanup()

	var lines []string
	var errs []error
	for _, in := range inputs {
		out, err := dir.apply(c, in.Text)
		if err != nil {
			Logger.Debugf("Failed to %s %s: %v", dir, in.Source, err)
			lines = append(lines, ui.Error.Sprint("✗")+" "+ui.Path.Sprint(in.Source)+": "+err.Error())
			errs = append(errs, fmt.Errorf("%s: %w", in.Source, err))
			continue
		}
		lines = append(lines, ui.Path.Sprint(in.Source)+": "+out)
	}

	spinner.FinalMSG = strings.Join(lines, "\n")
	if len(errs) > 0 {
		return fmt.Errorf("failed to %s %d of %d files: %w", dir, len(errs), len(inputs), errors.Join(errs...))
	}
	return nil
}

func (k cipherKind) exampleKey() string {
	if k.name == "route" {
		return "3"
	}
	return "КЛЮЧ"
}

// resetCipherFlags clears flag values and their Changed state between test runs.
func resetCipherFlags(group *cobra.Command, flags *cipherFlags) {
	*flags = cipherFlags{}
	reset := func(f *pflag.Flag) { f.Changed = false }
	group.PersistentFlags().VisitAll(reset)
	for _, sub := range group.Commands() {
		sub.Flags().VisitAll(reset)
	}
}
