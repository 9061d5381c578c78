// Package logger wraps zerolog with the constructors the services share.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a JSON logger on stdout tagged with the given role
func NewLogger(role, level string) *Logger {
	return New(os.Stdout, role, level)
}

// New creates a logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger with a component field
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}
