package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// runCommand executes group with args and stdin in a clean environment and
// returns what it wrote to stdout and stderr.
func runCommand(t *testing.T, group *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()

	ResetGlobalState()
	SetConfigPath(filepath.Join(t.TempDir(), "config.toml"))
	t.Cleanup(ResetGlobalState)

	return execute(group, stdin, args...)
}

// execute runs group without resetting state, for tests that chain commands
// against the same config file.
func execute(group *cobra.Command, stdin string, args ...string) (string, string, error) {
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	group.SetOut(&stdout)
	group.SetErr(&stderr)
	group.SetIn(strings.NewReader(stdin))
	group.SetArgs(args)

	err := group.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateEnv clears every variable that could leak a key or setting into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"SHIFR_ROUTE_KEY", "SHIFR_GRONSFELD_KEY", "SHIFR_SHELL_BANNER"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// writeConfig writes a config file and points the commands at it.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}
