package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestSetup_WritesJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	log, closer, err := Setup(Options{Writer: &buf, Level: "debug"})
	require.NoError(t, err)
	defer closer.Close()

	log.Debug("session started", "session_id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "session started", rec["msg"])
	assert.Equal(t, "abc", rec["session_id"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestSetup_InvalidLevelWarns(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	log, _, err := Setup(Options{Writer: &buf, Level: "loud"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "invalid log level configured")
	buf.Reset()
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestSetup_CreatesFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "state", "kanatui.log")
	log, closer, err := Setup(Options{Path: path})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"hello"`))
}

func TestSetup_EmptyPath(t *testing.T) {
	_, _, err := Setup(Options{})
	assert.Error(t, err)
}
