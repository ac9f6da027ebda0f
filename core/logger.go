package core

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/time/rate"
)

// Severity tags a reported failure. It only affects how the failure is
// logged, never what the caller gets back.
type Severity int

const (
	Info Severity = iota
	Warning
	Severe
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	default:
		return "SEVERE"
	}
}

// Level maps the severity onto a slog level.
func (s Severity) Level() slog.Level {
	switch s {
	case Info:
		return slog.LevelInfo
	case Warning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Logger wraps slog.Logger with failure reporting.
// The zero value of *Logger (nil) discards all output.
type Logger struct {
	*slog.Logger
	limiter *rate.Limiter
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithSampling returns a copy of the logger that emits at most burst
// records at once and limit records per second afterwards. Dropped records
// are lost; the errors they describe are still returned to the caller.
func (l *Logger) WithSampling(limit rate.Limit, burst int) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Fail logs err with the source location of the calling function and
// returns err unchanged, so failure paths read as
//
//	return v.log.Fail(core.Severe, core.ErrNullPointer)
func (l *Logger) Fail(sev Severity, err error) error {
	if l == nil || l.Logger == nil || err == nil {
		return err
	}
	l.report(sev, err, 2)
	return err
}

// Report logs err like Fail but discards it. Used where an operation
// degrades to a boolean or zero result instead of returning an error.
func (l *Logger) Report(sev Severity, err error) {
	if l == nil || l.Logger == nil || err == nil {
		return
	}
	l.report(sev, err, 2)
}

func (l *Logger) report(sev Severity, err error, skip int) {
	ctx := context.Background()
	if !l.Enabled(ctx, sev.Level()) {
		return
	}
	if l.limiter != nil && !l.limiter.Allow() {
		return
	}

	file, function, line := "unknown", "unknown", 0
	if pc, f, ln, ok := runtime.Caller(skip); ok {
		file, line = filepath.Base(f), ln
		if fn := runtime.FuncForPC(pc); fn != nil {
			function = fn.Name()
		}
	}

	l.Log(ctx, sev.Level(), err.Error(),
		"code", CodeOf(err).String(),
		"severity", sev.String(),
		"file", file,
		"function", function,
		"line", line,
	)
}
