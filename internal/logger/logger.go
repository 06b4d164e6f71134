// Package logger wraps zerolog with the constructors liftconf uses.
//
// The CLI logs human-readable lines to stderr so stdout stays clean for
// command output; the shared library logs JSON. Library packages accept a
// zerolog.Logger and default to zerolog.Nop.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New builds a console logger writing to w at the named level.
// Unknown levels fall back to warn.
func New(w io.Writer, level string, noColor bool) *Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}
	l := zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
	return &Logger{l}
}

// NewJSON builds a JSON logger for the given role, for processes that are not
// attached to a terminal.
func NewJSON(w io.Writer, role, level string) *Logger {
	l := zerolog.New(w).Level(ParseLevel(level)).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return l
}
