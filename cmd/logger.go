package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/pflag"
)

type logConfig struct {
	Level string
	JSON  bool
}

var logOptions logConfig

func addLogFlags(fs *pflag.FlagSet, cfg *logConfig) {
	fs.StringVar(&cfg.Level, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.JSON, "json", false, "Write logs as JSON")
}

// newLogger creates a configured slog.Logger. Logs never go to the console
// dialogue stream.
func newLogger(w io.Writer, cfg logConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
