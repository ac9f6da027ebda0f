package compact

import (
	"slices"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/multiindex"
	"github.com/hupe1980/vsmath/vector"
)

// Iterator enumerates the grid nodes of a Compact.
//
// The bypass order names the axes from fastest to slowest varying. Starting
// from Begin, repeated Next calls visit every node exactly once; the call
// after the last node fails with core.ErrIndexOutOfBound and the iterator
// stays invalid for good.
type Iterator struct {
	ctrl  *control
	pos   []uint64
	order []uint64
	valid bool
	log   *core.Logger
}

// Iterator returns an iterator at grid position start that advances in the
// given bypass order. order must be a permutation of 0..Dim()-1.
func (c *Compact) Iterator(start, order *multiindex.MultiIndex) (*Iterator, error) {
	log := c.opts.logger
	if start == nil || order == nil {
		return nil, log.Fail(core.Severe, core.ErrNullPointer)
	}
	if start.Dim() != c.Dim() {
		return nil, log.Fail(core.Severe, core.Mismatch(c.Dim(), start.Dim()))
	}
	if order.Dim() != c.Dim() {
		return nil, log.Fail(core.Severe, core.Mismatch(c.Dim(), order.Dim()))
	}
	if !order.IsPermutation() {
		return nil, log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "bypass order %v is not a permutation", order))
	}
	pos := start.Data()
	if err := c.checkPosition(pos); err != nil {
		return nil, log.Fail(core.Severe, err)
	}

	return &Iterator{
		ctrl:  c.ctrl,
		pos:   pos,
		order: order.Data(),
		valid: true,
		log:   log,
	}, nil
}

// Begin returns an iterator at the first node, every axis at position 1.
func (c *Compact) Begin(order *multiindex.MultiIndex) (*Iterator, error) {
	start, err := multiindex.Filled(c.Dim(), 1)
	if err != nil {
		return nil, c.opts.logger.Fail(core.Severe, err)
	}
	return c.Iterator(start, order)
}

// End returns an iterator at the last node, every axis at its node count.
func (c *Compact) End(order *multiindex.MultiIndex) (*Iterator, error) {
	return c.Iterator(c.Grid(), order)
}

// Valid reports whether the iterator points at a node.
func (it *Iterator) Valid() bool {
	return it.valid
}

// Index returns a copy of the current grid position.
func (it *Iterator) Index() *multiindex.MultiIndex {
	m, _ := multiindex.New(it.pos, multiindex.WithLogger(it.log))
	return m
}

// Order returns a copy of the bypass order.
func (it *Iterator) Order() *multiindex.MultiIndex {
	m, _ := multiindex.New(it.order, multiindex.WithLogger(it.log))
	return m
}

// Next advances to the following node.
func (it *Iterator) Next() error {
	if !it.valid {
		return it.log.Fail(core.Info, core.Errorf(core.ErrIndexOutOfBound, "iterator is exhausted"))
	}
	pos, err := it.ctrl.next(it.pos, it.order)
	if err != nil {
		it.valid = false
		return it.log.Fail(core.Info, err)
	}
	it.pos = pos
	return nil
}

// Clone returns an independent iterator at the same node.
func (it *Iterator) Clone() *Iterator {
	c := *it
	c.pos = slices.Clone(it.pos)
	c.order = slices.Clone(it.order)
	return &c
}

// Following returns a copy advanced by one node. The copy is invalid if
// the grid is exhausted.
func (it *Iterator) Following() *Iterator {
	c := it.Clone()
	_ = c.Next()
	return c
}

// VectorCopy returns the point at the current node.
func (it *Iterator) VectorCopy() (*vector.Vector, error) {
	p, err := it.current()
	if err != nil {
		return nil, it.log.Fail(core.Warning, err)
	}
	return vector.New(p, vector.WithLogger(it.log))
}

// VectorCoords writes the point at the current node into dst.
func (it *Iterator) VectorCoords(dst *vector.Vector) error {
	if dst == nil {
		return it.log.Fail(core.Severe, core.ErrNullPointer)
	}
	p, err := it.current()
	if err != nil {
		return it.log.Fail(core.Warning, err)
	}
	return dst.SetData(p)
}

func (it *Iterator) current() ([]float64, error) {
	if !it.valid {
		return nil, core.Errorf(core.ErrIndexOutOfBound, "iterator is exhausted")
	}
	return it.ctrl.point(it.pos)
}
