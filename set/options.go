package set

import (
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/resource"
)

// defaultInitialCapacity is the number of vectors the first allocation holds.
const defaultInitialCapacity = 16

// Option configures a Set.
type Option func(*options)

type options struct {
	logger          *core.Logger
	resource        *resource.Controller
	initialCapacity int
}

func defaultOptions() options {
	return options{
		initialCapacity: defaultInitialCapacity,
	}
}

// WithLogger sets the logger failures are reported to. Sets produced from
// this one (clones, algebra results) and its iterators share it.
func WithLogger(l *core.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithResourceController bounds the memory held by the set's storage.
// Growth beyond the controller's limit fails with core.ErrAllocationFailure.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resource = rc
	}
}

// WithInitialCapacity sets how many vectors the first allocation holds.
// Non-positive values are ignored.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}
