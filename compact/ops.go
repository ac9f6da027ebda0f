package compact

import (
	"math"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/multiindex"
	"github.com/hupe1980/vsmath/vector"
)

// Intersection returns the box shared by a and b, discretized by grid.
// Boxes that are disjoint along any axis have no intersection. An axis
// whose overlap is narrower than tol collapses onto its left edge.
// The result uses a's logger.
func Intersection(a, b *Compact, grid *multiindex.MultiIndex, tol float64) (*Compact, error) {
	log := loggerOf(a, b)
	if err := checkOperands(a, b, grid); err != nil {
		return nil, log.Fail(core.Severe, err)
	}
	switch {
	case tol < 0:
		return nil, log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "negative tolerance %g", tol))
	case math.IsNaN(tol):
		return nil, log.Fail(core.Severe, core.Errorf(core.ErrNotANumber, "tolerance is NaN"))
	case math.IsInf(tol, 0):
		return nil, log.Fail(core.Severe, core.Errorf(core.ErrInfinityOverflow, "tolerance is %v", tol))
	}

	left := make([]float64, a.Dim())
	right := make([]float64, a.Dim())
	for axis := range left {
		lo := max(a.left[axis], b.left[axis])
		hi := min(a.right[axis], b.right[axis])
		if lo > hi {
			return nil, log.Fail(core.Warning, core.Errorf(core.ErrInvalidArgument, "axis %d: boxes are disjoint", axis))
		}
		if hi-lo < tol {
			hi = lo
		}
		left[axis], right[axis] = lo, hi
	}
	return build(left, right, grid, a.opts)
}

// Span returns the smallest box containing both a and b, discretized by
// grid. The result uses a's logger.
func Span(a, b *Compact, grid *multiindex.MultiIndex) (*Compact, error) {
	if err := checkOperands(a, b, grid); err != nil {
		return nil, loggerOf(a, b).Fail(core.Severe, err)
	}

	left := make([]float64, a.Dim())
	right := make([]float64, a.Dim())
	for axis := range left {
		left[axis] = min(a.left[axis], b.left[axis])
		right[axis] = max(a.right[axis], b.right[axis])
	}
	return build(left, right, grid, a.opts)
}

func build(left, right []float64, grid *multiindex.MultiIndex, o options) (*Compact, error) {
	l, err := vector.New(left, vector.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	r, err := vector.New(right, vector.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return New(l, r, grid, WithLogger(o.logger))
}

func checkOperands(a, b *Compact, grid *multiindex.MultiIndex) error {
	if a == nil || b == nil || grid == nil {
		return core.ErrNullPointer
	}
	if b.Dim() != a.Dim() {
		return core.Mismatch(a.Dim(), b.Dim())
	}
	if grid.Dim() != a.Dim() {
		return core.Mismatch(a.Dim(), grid.Dim())
	}
	return nil
}

func loggerOf(a, b *Compact) *core.Logger {
	if a != nil {
		return a.opts.logger
	}
	if b != nil {
		return b.opts.logger
	}
	return nil
}
