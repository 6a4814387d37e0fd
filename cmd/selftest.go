package cmd

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/shifr/internal/selftest"
	"github.com/PolarWolf314/shifr/internal/ui"

	"github.com/spf13/cobra"
)

func newSelfTestCmd(kind cipherKind, flags *cipherFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in encrypt/decrypt checks",
		Long: `Runs a fixed set of round trips: a clean one with your key, a key with
digits, an empty key, a text without letters, an empty text and a cipher
text whose first letter was lowercased. Only the first is expected to pass;
the others show how each kind of bad input is reported.

Without --key, the key from the environment or config is used, or КЛЮЧ.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting %s selftest command", kind.name)
			key, err := resolveKey(cmd, kind, flags)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to resolve key: %w", err)
			}
			if key == "" {
				key = kind.exampleKey()
			}

			results := selftest.Run(kind.newCipher, selftest.DefaultCases(key))
			printSelfTest(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

// printSelfTest writes one block per result.
func printSelfTest(w io.Writer, results []selftest.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "key=%s\n", r.Case.Key)
		fmt.Fprintf(w, "text=%s\n", r.Case.Text)
		if r.Case.Corrupt {
			fmt.Fprintln(w, ui.Muted.Sprint("cipher text corrupted before decryption"))
		}
		if r.Err != nil {
			if r.CipherText != "" {
				fmt.Fprintf(w, "cipherText=%s\n", r.CipherText)
			}
			fmt.Fprintf(w, "%s %v\n\n", ui.Error.Sprint("Error:"), r.Err)
			continue
		}

		fmt.Fprintf(w, "cipherText=%s\n", r.CipherText)
		fmt.Fprintf(w, "decryptedText=%s\n", r.Decrypted)
		if r.OK {
			fmt.Fprintln(w, ui.Success.Sprint("Ok"))
		} else {
			fmt.Fprintln(w, ui.Error.Sprint("Err"))
		}
		fmt.Fprintln(w)
	}
}
