package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Route     RouteConfig     `toml:"route"`
	Gronsfeld GronsfeldConfig `toml:"gronsfeld"`
	Shell     ShellConfig     `toml:"shell"`
}

type RouteConfig struct {
	Key string `toml:"key" env:"SHIFR_ROUTE_KEY"`
}

type GronsfeldConfig struct {
	Key string `toml:"key" env:"SHIFR_GRONSFELD_KEY"`
}

type ShellConfig struct {
	Banner bool `toml:"banner" env:"SHIFR_SHELL_BANNER"`
}

// ErrConfigExists is returned by Init when the file is already present.
var ErrConfigExists = errors.New("config file already exists")

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{Banner: true},
	}
}

// DefaultPath returns the location of the user config file.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "shifr", "config.toml"), nil
}

// Load reads the config file at path, if any, and applies environment
// overrides on top of it.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(path, config); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return config, nil
}

// Save writes config to path, creating parent directories.
func Save(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Init writes the default config to path unless a file is already there and
// force is false.
func Init(path string, force bool) (*Config, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	config := Default()
	if err := Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}
