// Package configs manages user configuration for shifr.
//
// Configuration is stored in TOML format at:
//
//	$XDG_CONFIG_HOME/shifr/config.toml   (os.UserConfigDir)
//
// A different file can be chosen with the --config flag. A missing file is
// not an error: the defaults are used.
//
// # Layout
//
//	[route]
//	key = "3"
//
//	[gronsfeld]
//	key = "КЛЮЧ"
//
//	[shell]
//	banner = true
//
// Keys stored here are only defaults for commands run without --key; they
// are validated by the ciphers, not by this package.
//
// # Environment
//
// Environment variables override the file:
//
//   - SHIFR_ROUTE_KEY
//   - SHIFR_GRONSFELD_KEY
//   - SHIFR_SHELL_BANNER
//
// Command-line flags override both.
package configs
