// Package logging sets up the process logger. A TUI owns the terminal, so
// logs go to a rotating file instead of stderr.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath returns the standard log file location.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, "watchhound", "watchhound.log"), nil
}

// Setup returns a JSON logger writing to a size-capped rotating file at
// path. An empty path falls back to the default location; if even that
// cannot be resolved, logs are discarded rather than corrupting the UI.
func Setup(path string) *slog.Logger {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return slog.New(slog.DiscardHandler)
		}
	}
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
