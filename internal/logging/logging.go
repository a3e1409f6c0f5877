// Package logging provides zerolog helpers shared across the CLI and the
// simulation engine. Loggers travel on the context; code deep in the engine
// retrieves them with FromContext instead of touching globals.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the root logger is constructed.
type Config struct {
	// Level is a zerolog level string ("debug", "info", "warn", "error").
	// Invalid values fall back to "info".
	Level string

	// Console enables the human-readable console writer. When false, logs
	// are emitted as JSON lines.
	Console bool

	// Out is the destination writer. Defaults to os.Stderr when nil.
	Out io.Writer
}

// New constructs a root logger from cfg.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	if cfg.Console {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger if
// none is present. Engine code should always log through this.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
