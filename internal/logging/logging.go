// Package logging builds the zerolog.Logger used by the gridwalk command.
//
// Library packages never log on their own account: the command attaches the
// logger to a context.Context (Logger.WithContext) and session picks it up
// with zerolog.Ctx.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidFormat is returned for formats other than console and json.
var ErrInvalidFormat = errors.New("logging: invalid format")

// Config selects level, format and destination.
type Config struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	Level string
	// Format is FormatConsole or FormatJSON; empty means console.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
	// NoColor disables ANSI colors in console format.
	NoColor bool
}

// New returns a logger configured by cfg. Unlike a global setup it leaves
// zerolog's package-level settings alone, so tests can build several.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
		}
		level = l
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidFormat, cfg.Format, FormatConsole, FormatJSON)
	}

	return zerolog.New(output).Level(level).With().
		Timestamp().
		Str("app", "gridwalk").
		Logger(), nil
}
