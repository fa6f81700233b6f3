// Package logging centralizes zerolog construction and context plumbing
// for the batchkit CLI and library collaborators.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	// FormatConsole renders human-readable, colorized output.
	FormatConsole = "console"

	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name; invalid values fall back to info.
	Level string

	// Format is FormatConsole or FormatJSON.
	Format string

	// Out overrides the output writer; defaults to stderr.
	Out io.Writer
}

// New builds a zerolog logger from the config.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext attaches the logger to a context.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to the context, or a disabled
// logger when none is attached.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
