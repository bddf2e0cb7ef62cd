// Package logx builds the process logger used by the CLI. Library packages
// return errors instead of logging; only the command layer logs.
package logx

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON slog.Logger writing to stderr and, when dir is not
// empty, to a size-rotated file under dir.
func New(level string, dir string) *slog.Logger {
	var w io.Writer = os.Stderr
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
				Filename:   filepath.Join(dir, "tradesim.log"),
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
	}

	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
