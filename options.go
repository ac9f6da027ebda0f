package vsmath

import (
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/hupe1980/vsmath/resource"
)

type options struct {
	logger          *Logger
	controller      *resource.Controller
	memoryLimit     int64
	initialCapacity int
	sampleLimit     rate.Limit
	sampleBurst     int
}

// Option configures a Toolkit.
type Option func(*options)

// WithLogger configures structured logging for every object the toolkit
// creates. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vsmath.NewJSONLogger(slog.LevelInfo)
//	tk := vsmath.New(vsmath.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithLogSampling caps failure records at burst at once and limit per
// second afterwards. Failed calls still return their errors.
func WithLogSampling(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.sampleLimit = limit
		o.sampleBurst = burst
	}
}

// WithMemoryLimit bounds the bytes held by all sets the toolkit creates.
// Ignored when WithResourceController supplies a controller.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithResourceController shares an existing controller, e.g. between
// several toolkits.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithInitialSetCapacity sets how many vectors the first allocation of a
// new set holds.
func WithInitialSetCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.controller == nil {
		o.controller = resource.NewController(resource.Config{
			MemoryLimitBytes: o.memoryLimit,
		})
	}
	if o.sampleBurst > 0 {
		o.logger = o.logger.WithSampling(o.sampleLimit, o.sampleBurst)
	}
	return o
}
