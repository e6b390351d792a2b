// Package logging constructs the slog logger used across the module.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ffmpeglight/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New constructs a slog logger using the provided options. Logs go to
// stderr by default so captured tool output on stdout stays clean.
func New(opts Options) (*slog.Logger, error) {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(output, handlerOpts)
	case "console":
		handler = slog.NewTextHandler(output, handlerOpts)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger using application config defaults.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console"})
	}
	return New(Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
