package compact

import "github.com/hupe1980/vsmath/core"

// Option configures a Compact.
type Option func(*options)

type options struct {
	logger *core.Logger
}

// WithLogger sets the logger failures are reported to. Clones, iterators
// and the vectors a compact hands out share it.
func WithLogger(l *core.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
