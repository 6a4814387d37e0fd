package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/shifr/internal/cipher"
	"github.com/PolarWolf314/shifr/internal/selftest"
	"github.com/PolarWolf314/shifr/internal/ui"
	"github.com/PolarWolf314/shifr/internal/utils"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// rekeyer is implemented by ciphers whose key can be replaced in place.
type rekeyer interface {
	SetKey(key string) error
	Key() string
}

// menuItem is one numbered entry of the shell menu.
type menuItem struct {
	choice string
	label  string
	run    func(s *shellSession) error
}

// shellSession is the state of one interactive run.
type shellSession struct {
	kind   cipherKind
	key    string
	cipher cipher.Cipher
	in     *bufio.Reader
	out    io.Writer
}

func newShellCmd(kind cipherKind, flags *cipherFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Encrypt and decrypt interactively from a numbered menu",
		Long: fmt.Sprintf(`Starts an interactive session with the %s.

The key is taken from --key, the environment or the config file; when none is
set you are asked for it. An invalid key ends the session with an error.
Errors in individual texts are reported and the session continues.`, strings.ToLower(kind.title)),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, kind, flags)
		},
	}
}

func runShell(cmd *cobra.Command, kind cipherKind, flags *cipherFlags) error {
	Logger.Infof("Starting %s shell", kind.name)
	s := &shellSession{
		kind: kind,
		in:   bufio.NewReader(cmd.InOrStdin()),
		out:  cmd.OutOrStdout(),
	}

	config, err := loadConfig()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load config: %w", err)
	}
	if config.Shell.Banner && utils.IsTerminalWriter(s.out) {
		banner := figure.NewFigure("shifr", "", true)
		fmt.Fprintln(s.out, ui.Success.Sprint(banner.String()))
	}
	fmt.Fprintf(s.out, "=== %s ===\n", kind.title)

	key, err := resolveKey(cmd, kind, flags)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to resolve key: %w", err)
	}
	if key == "" {
		fmt.Fprintf(s.out, "Enter key (%s): ", kind.keyHint)
		key, err = readLine(s.in)
		if errors.Is(err, io.EOF) {
			return noKeyError(kind)
		}
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	s.cipher, err = kind.newCipher(key)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to initialize %s cipher: %w", kind.name, err)
	}
	s.key = key
	fmt.Fprintf(s.out, "%s Key loaded: %s\n", ui.Success.Sprint("✓"), ui.Key.Sprint(s.currentKey()))

	return s.loop()
}

func (s *shellSession) menu() []menuItem {
	items := []menuItem{
		{"1", "Encrypt text", func(s *shellSession) error { return s.transform(encrypt) }},
		{"2", "Decrypt text", func(s *shellSession) error { return s.transform(decrypt) }},
	}
	if _, ok := s.cipher.(rekeyer); ok {
		items = append(items, menuItem{"3", "Change key", (*shellSession).changeKey})
	}
	if s.kind.selfTest {
		items = append(items, menuItem{fmt.Sprint(len(items) + 1), "Run self-test", (*shellSession).selfTest})
	}
	return items
}

func (s *shellSession) loop() error {
	items := s.menu()
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Choose an operation:")
		for _, item := range items {
			fmt.Fprintf(s.out, "  %s - %s\n", ui.Info.Sprint(item.choice), item.label)
		}
		fmt.Fprintf(s.out, "  %s - Exit\n", ui.Info.Sprint("0"))
		fmt.Fprint(s.out, "Your choice: ")

		choice, err := readLine(s.in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read choice: %w", err)
		}
		choice = strings.TrimSpace(choice)

		if choice == "0" {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}

		item, ok := findItem(items, choice)
		if !ok {
			fmt.Fprintf(s.out, "%s Invalid operation %q, choose one of 0-%d\n", ui.Error.Sprint("✗"), choice, len(items))
			continue
		}
		if err := item.run(s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func findItem(items []menuItem, choice string) (menuItem, bool) {
	for _, item := range items {
		if item.choice == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

func (s *shellSession) transform(dir direction) error {
	fmt.Fprint(s.out, "Enter text: ")
	text, err := readLine(s.in)
	if err != nil {
		return err
	}

	out, err := dir.apply(s.cipher, text)
	if err != nil {
		Logger.Debugf("%s failed: %v", dir, err)
		fmt.Fprintf(s.out, "%s Failed to %s text: %v\n", ui.Error.Sprint("✗"), dir, err)
		return nil
	}

	fmt.Fprintf(s.out, "Source text:  %s\n", text)
	if dir == encrypt {
		fmt.Fprintf(s.out, "Encrypted:    %s\n", ui.CipherText.Sprint(out))
	} else {
		fmt.Fprintf(s.out, "Decrypted:    %s\n", ui.OpenText.Sprint(out))
	}
	return nil
}

func (s *shellSession) changeKey() error {
	r := s.cipher.(rekeyer)
	fmt.Fprintf(s.out, "Enter new key (%s): ", s.kind.keyHint)
	key, err := readLine(s.in)
	if err != nil {
		return err
	}

	if err := r.SetKey(key); err != nil {
		fmt.Fprintf(s.out, "%s Key not changed: %v\n", ui.Error.Sprint("✗"), err)
		return nil
	}
	s.key = key
	fmt.Fprintf(s.out, "%s Key changed to %s\n", ui.Success.Sprint("✓"), ui.Key.Sprint(r.Key()))
	return nil
}

func (s *shellSession) selfTest() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Self-test ===")
	printSelfTest(s.out, selftest.Run(s.kind.newCipher, selftest.DefaultCases(s.key)))
	return nil
}

// currentKey returns the canonical key when the cipher exposes it.
func (s *shellSession) currentKey() string {
	if r, ok := s.cipher.(rekeyer); ok {
		return r.Key()
	}
	return s.key
}
