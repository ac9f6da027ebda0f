package vsmath

import (
	"log/slog"

	"github.com/hupe1980/vsmath/core"
)

// Logger is the structured logger every vsmath object reports failures to.
// A nil *Logger discards all output.
type Logger = core.Logger

// Severity tags a reported failure.
type Severity = core.Severity

const (
	Info    = core.Info
	Warning = core.Warning
	Severe  = core.Severe
)

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	return core.NewLogger(handler)
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelWarn).
func NewJSONLogger(level slog.Level) *Logger {
	return core.NewJSONLogger(level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return core.NewTextLogger(level)
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return core.NoopLogger()
}
