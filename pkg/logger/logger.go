// Package logger builds zerolog loggers and adapts them to the engine's Logger seam.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error, disabled
	Pretty bool      // Enable pretty console output
	Out    io.Writer // defaults to os.Stderr so report output on stdout stays clean
}

// ParseLevel maps a level name to a zerolog level; unknown names fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Out != nil {
		output = cfg.Out
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// EngineLogger adapts a zerolog.Logger to the printf-style calculation.Logger interface.
type EngineLogger struct {
	log zerolog.Logger
}

// NewEngineLogger tags every entry with component=engine.
func NewEngineLogger(l zerolog.Logger) EngineLogger {
	return EngineLogger{log: l.With().Str("component", "engine").Logger()}
}

func (e EngineLogger) Debugf(format string, args ...any) { e.log.Debug().Msgf(format, args...) }
func (e EngineLogger) Infof(format string, args ...any)  { e.log.Info().Msgf(format, args...) }
func (e EngineLogger) Warnf(format string, args ...any)  { e.log.Warn().Msgf(format, args...) }
func (e EngineLogger) Errorf(format string, args ...any) { e.log.Error().Msgf(format, args...) }
