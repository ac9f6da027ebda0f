package compact

import (
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/multiindex"
	"github.com/hupe1980/vsmath/vector"
)

// Compact is an axis-aligned box [left, right] with a grid of nodes along
// every axis. Grid positions are 1-based: position p on an axis with g nodes
// lies at left + (p-1)/(g-1) * (right-left).
type Compact struct {
	left  []float64
	right []float64
	grid  []uint64

	ctrl *control
	opts options
}

// New creates a compact from copies of its boundaries and grid. Every axis
// needs left <= right and at least two nodes.
func New(left, right *vector.Vector, grid *multiindex.MultiIndex, opts ...Option) (*Compact, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	if left == nil || right == nil || grid == nil {
		return nil, log.Fail(core.Severe, core.ErrNullPointer)
	}
	if right.Dim() != left.Dim() {
		return nil, log.Fail(core.Severe, core.Mismatch(left.Dim(), right.Dim()))
	}
	if grid.Dim() != left.Dim() {
		return nil, log.Fail(core.Severe, core.Mismatch(left.Dim(), grid.Dim()))
	}

	c := &Compact{
		left:  left.Data(),
		right: right.Data(),
		grid:  grid.Data(),
		opts:  o,
	}
	for axis := range c.left {
		if c.left[axis] > c.right[axis] {
			return nil, log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument,
				"axis %d: left %g exceeds right %g", axis, c.left[axis], c.right[axis]))
		}
		if c.grid[axis] < 2 {
			return nil, log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument,
				"axis %d: grid needs at least 2 nodes, got %d", axis, c.grid[axis]))
		}
	}

	c.ctrl = newControl(c)
	return c, nil
}

// Dim returns the number of axes.
func (c *Compact) Dim() int {
	return len(c.left)
}

// Logger returns the logger the compact reports to.
func (c *Compact) Logger() *core.Logger {
	return c.opts.logger
}

// Clone returns an independent copy with a control block of its own.
func (c *Compact) Clone() *Compact {
	cl := &Compact{
		left:  append([]float64(nil), c.left...),
		right: append([]float64(nil), c.right...),
		grid:  append([]uint64(nil), c.grid...),
		opts:  c.opts,
	}
	cl.ctrl = newControl(cl)
	return cl
}

// IsInside reports whether left[i] <= v[i] <= right[i] on every axis.
// A nil or mismatched v is logged and reported as outside.
func (c *Compact) IsInside(v *vector.Vector) bool {
	if v == nil {
		c.opts.logger.Report(core.Severe, core.ErrNullPointer)
		return false
	}
	if v.Dim() != c.Dim() {
		c.opts.logger.Report(core.Severe, core.Mismatch(c.Dim(), v.Dim()))
		return false
	}
	for axis, x := range v.All() {
		if x < c.left[axis] || x > c.right[axis] {
			return false
		}
	}
	return true
}

// LeftBoundary returns a copy of the lower corner.
func (c *Compact) LeftBoundary() *vector.Vector {
	v, _ := vector.New(c.left, vector.WithLogger(c.opts.logger))
	return v
}

// RightBoundary returns a copy of the upper corner.
func (c *Compact) RightBoundary() *vector.Vector {
	v, _ := vector.New(c.right, vector.WithLogger(c.opts.logger))
	return v
}

// Grid returns a copy of the node counts.
func (c *Compact) Grid() *multiindex.MultiIndex {
	m, _ := multiindex.New(c.grid, multiindex.WithLogger(c.opts.logger))
	return m
}

// VectorCopy returns the point at grid position index. Positions are
// 1-based: 1 is left and grid[axis] is right on every axis.
func (c *Compact) VectorCopy(index *multiindex.MultiIndex) (*vector.Vector, error) {
	p, err := c.checkedPoint(index)
	if err != nil {
		return nil, c.opts.logger.Fail(core.Severe, err)
	}
	return vector.New(p, vector.WithLogger(c.opts.logger))
}

// VectorCoords writes the point at 1-based grid position index into dst.
func (c *Compact) VectorCoords(index *multiindex.MultiIndex, dst *vector.Vector) error {
	if dst == nil {
		return c.opts.logger.Fail(core.Severe, core.ErrNullPointer)
	}
	p, err := c.checkedPoint(index)
	if err != nil {
		return c.opts.logger.Fail(core.Severe, err)
	}
	return dst.SetData(p)
}

// Close detaches the control block. Iterators fail with
// core.ErrIndexOutOfBound afterwards.
func (c *Compact) Close() error {
	if c == nil {
		return nil
	}
	c.ctrl.detach()
	return nil
}

func (c *Compact) checkedPoint(index *multiindex.MultiIndex) ([]float64, error) {
	if index == nil {
		return nil, core.ErrNullPointer
	}
	if index.Dim() != c.Dim() {
		return nil, core.Mismatch(c.Dim(), index.Dim())
	}
	pos := index.Data()
	if err := c.checkPosition(pos); err != nil {
		return nil, err
	}
	return c.point(pos), nil
}

// checkPosition requires 1 <= pos[axis] <= grid[axis] on every axis.
func (c *Compact) checkPosition(pos []uint64) error {
	for axis, p := range pos {
		if p < 1 || p > c.grid[axis] {
			return core.Errorf(core.ErrIndexOutOfBound, "axis %d: position %d outside [1, %d]", axis, p, c.grid[axis])
		}
	}
	return nil
}

// point interpolates a valid grid position. The last node of an axis is
// pinned to right so rounding never leaves the box.
func (c *Compact) point(pos []uint64) []float64 {
	out := make([]float64, len(pos))
	for axis, p := range pos {
		g := c.grid[axis]
		if p == g {
			out[axis] = c.right[axis]
			continue
		}
		lambda := float64(p-1) / float64(g-1)
		out[axis] = c.left[axis] + lambda*(c.right[axis]-c.left[axis])
	}
	return out
}
