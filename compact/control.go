package compact

import (
	"slices"

	"github.com/hupe1980/vsmath/core"
)

// control is the control block of a Compact. Iterators ask it to advance a
// grid position and to interpolate points; they never read the compact's
// fields themselves. Close detaches it.
type control struct {
	compact *Compact
}

func newControl(c *Compact) *control {
	return &control{compact: c}
}

func (cb *control) detach() {
	cb.compact = nil
}

func (cb *control) attached() (*Compact, error) {
	if cb == nil || cb.compact == nil {
		return nil, core.Errorf(core.ErrIndexOutOfBound, "compact is closed")
	}
	return cb.compact, nil
}

// next advances pos like a mixed-radix odometer whose digits are visited
// in order: order[0] turns fastest, an axis at its last node resets to 1
// and carries into the next. Carrying out of the last axis exhausts the
// grid; pos is returned unchanged in that case.
func (cb *control) next(pos, order []uint64) ([]uint64, error) {
	c, err := cb.attached()
	if err != nil {
		return nil, err
	}

	out := slices.Clone(pos)
	for _, axis := range order {
		if out[axis] < c.grid[axis] {
			out[axis]++
			return out, nil
		}
		out[axis] = 1
	}
	return pos, core.Errorf(core.ErrIndexOutOfBound, "grid exhausted")
}

// point interpolates pos against the current boundaries.
func (cb *control) point(pos []uint64) ([]float64, error) {
	c, err := cb.attached()
	if err != nil {
		return nil, err
	}
	if err := c.checkPosition(pos); err != nil {
		return nil, err
	}
	return c.point(pos), nil
}
