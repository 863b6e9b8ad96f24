// Package logger provides structured logging for kanatui. The terminal is
// owned by the UI, so records go to a file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options configures Setup.
type Options struct {
	// Path is the log file, created with its parent directories.
	// Ignored when Writer is set.
	Path string
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// Writer overrides the file destination.
	Writer io.Writer
}

// ParseLevel maps a level name to a slog level. ok is false for unknown
// names, which map to info.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Setup builds a JSON logger and makes it the slog default. The returned
// closer releases the log file and must be called on exit.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	level, ok := ParseLevel(opts.Level)

	w := opts.Writer
	var closer io.Closer = io.NopCloser(nil)
	if w == nil {
		if opts.Path == "" {
			return nil, nil, fmt.Errorf("log path is empty")
		}
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", opts.Level,
			"default_level", "info")
	}

	slog.SetDefault(logger)
	return logger, closer, nil
}
