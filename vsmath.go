package vsmath

import (
	"errors"

	"github.com/hupe1980/vsmath/compact"
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/distance"
	"github.com/hupe1980/vsmath/multiindex"
	"github.com/hupe1980/vsmath/resource"
	"github.com/hupe1980/vsmath/set"
	"github.com/hupe1980/vsmath/vector"
)

// Toolkit creates vectors, multi-indices, sets and compacts that share one
// logger and one resource controller.
//
// A Toolkit holds no mutable state of its own and may be used from several
// goroutines; the objects it returns may not.
type Toolkit struct {
	opts options
}

// New creates a toolkit configured by opts.
func New(optFns ...Option) *Toolkit {
	return &Toolkit{opts: applyOptions(optFns)}
}

// Logger returns the logger shared by the toolkit's objects.
func (t *Toolkit) Logger() *Logger {
	return t.opts.logger
}

// ResourceController returns the controller bounding set storage.
func (t *Toolkit) ResourceController() *resource.Controller {
	return t.opts.controller
}

// NewVector creates a vector from a copy of data.
func (t *Toolkit) NewVector(data []float64) (*vector.Vector, error) {
	return vector.New(data, vector.WithLogger(t.opts.logger))
}

// Zeros creates a zero vector of dimension dim.
func (t *Toolkit) Zeros(dim int) (*vector.Vector, error) {
	return vector.Zeros(dim, vector.WithLogger(t.opts.logger))
}

// NewMultiIndex creates a multi-index from a copy of data.
func (t *Toolkit) NewMultiIndex(data []uint64) (*multiindex.MultiIndex, error) {
	return multiindex.New(data, multiindex.WithLogger(t.opts.logger))
}

// NewSet creates an empty set whose storage is charged to the toolkit's
// resource controller.
func (t *Toolkit) NewSet() *set.Set {
	return set.New(
		set.WithLogger(t.opts.logger),
		set.WithResourceController(t.opts.controller),
		set.WithInitialCapacity(t.opts.initialCapacity),
	)
}

// SetOf creates a set holding rows. Rows that duplicate an earlier row
// under kind and tol are dropped; any other failure closes the set and is
// returned.
func (t *Toolkit) SetOf(rows [][]float64, kind distance.Norm, tol float64) (*set.Set, error) {
	s := t.NewSet()
	for _, row := range rows {
		v, err := t.NewVector(row)
		if err == nil {
			err = s.Insert(v, kind, tol)
		}
		if err != nil && !errors.Is(err, core.ErrVectorAlreadyExists) {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

// NewCompact creates the box [left, right] discretized by grid.
func (t *Toolkit) NewCompact(left, right *vector.Vector, grid *multiindex.MultiIndex) (*compact.Compact, error) {
	return compact.New(left, right, grid, compact.WithLogger(t.opts.logger))
}

// Box is NewCompact for raw coordinates.
func (t *Toolkit) Box(left, right []float64, grid []uint64) (*compact.Compact, error) {
	l, err := t.NewVector(left)
	if err != nil {
		return nil, err
	}
	r, err := t.NewVector(right)
	if err != nil {
		return nil, err
	}
	g, err := t.NewMultiIndex(grid)
	if err != nil {
		return nil, err
	}
	return t.NewCompact(l, r, g)
}
