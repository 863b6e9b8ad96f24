package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = configCmd.Flags().Set("reset", "false")
		_ = rootCmd.PersistentFlags().Set("config", "")
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "kanatui")
}

func TestConfigCommand_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out := execute(t, "config", "--config", path)

	assert.Contains(t, out, path)
	assert.Contains(t, out, "hiragana")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigCommand_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[study]\nwriting_system = \"katakana\"\n"), 0o644))

	out := execute(t, "config", "--config", path)
	assert.Contains(t, out, "katakana")

	out = execute(t, "config", "--config", path, "--reset")
	assert.Contains(t, out, "hiragana")
}
