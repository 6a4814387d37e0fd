package cmd

import (
	"github.com/PolarWolf314/shifr/internal/cipher"
	"github.com/PolarWolf314/shifr/internal/configs"
	"github.com/PolarWolf314/shifr/internal/gronsfeld"
)

var (
	gronsfeldFlags cipherFlags

	gronsfeldKind = cipherKind{
		name:    "gronsfeld",
		title:   "Gronsfeld cipher",
		keyHint: "a word in Russian letters",
		envVar:  "SHIFR_GRONSFELD_KEY",
		newCipher: func(key string) (cipher.Cipher, error) {
			c, err := gronsfeld.New(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		configKey: func(c *configs.Config) string { return c.Gronsfeld.Key },
		selfTest:  true,
	}

	// GronsfeldCmd is the top-level Gronsfeld cipher command.
	GronsfeldCmd = newCipherGroup(gronsfeldKind, &gronsfeldFlags, `Encrypts and decrypts with the Gronsfeld cipher over the 33-letter Russian alphabet.

Each letter of the key word gives a shift equal to its position in the
alphabet (А=0 ... Я=32). Letter i of the open text is shifted forward by the
shift of key letter i mod len(key), modulo 33. Non-letters are dropped from
the open text; cipher text must consist of uppercase letters only.

Examples:
  # Encrypt with the key word КЛЮЧ
  shifr gronsfeld encrypt -k ключ "Привет, мир!"

  # Decrypt every .txt file under notes/
  shifr gronsfeld decrypt -k КЛЮЧ --files 'notes/**/*.txt'

  # Run the built-in checks
  shifr gronsfeld selftest`)
)
