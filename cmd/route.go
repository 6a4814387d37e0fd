package cmd

import (
	"github.com/PolarWolf314/shifr/internal/cipher"
	"github.com/PolarWolf314/shifr/internal/configs"
	"github.com/PolarWolf314/shifr/internal/route"
)

var (
	routeFlags cipherFlags

	routeKind = cipherKind{
		name:    "route",
		title:   "Route transposition cipher",
		keyHint: "number of columns, a positive integer",
		envVar:  "SHIFR_ROUTE_KEY",
		newCipher: func(key string) (cipher.Cipher, error) {
			c, err := route.New(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		configKey: func(c *configs.Config) string { return c.Route.Key },
	}

	// RouteCmd is the top-level route cipher command.
	RouteCmd = newCipherGroup(routeKind, &routeFlags, `Encrypts and decrypts with a route transposition cipher.

The open text is stripped to letters, upper cased and written into a table
with KEY columns, row by row. The cipher text is read out column by column,
from the rightmost column to the leftmost, top to bottom.

Examples:
  # Encrypt a phrase with 3 columns
  shifr route encrypt -k 3 "Привет, привет"

  # Decrypt from stdin
  echo ИТИТРЕРЕПВПВ | shifr route decrypt -k 3

  # Interactive menu
  shifr route shell`)
)

