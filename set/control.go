package set

import (
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/vector"
)

// control is the control block of a Set. Iterators navigate through it and
// never touch the set directly. It does not own the set: Close detaches it,
// after which every navigation fails.
type control struct {
	set *Set
}

func newControl(s *Set) *control {
	return &control{set: s}
}

func (c *control) detach() {
	c.set = nil
}

func (c *control) attached() (*Set, error) {
	if c == nil || c.set == nil {
		return nil, core.Errorf(core.ErrIndexOutOfBound, "set is closed")
	}
	return c.set, nil
}

// step resolves id to its current slot and returns the identity delta
// slots away.
func (c *control) step(id core.ID, delta int) (core.ID, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	slot, ok := s.ids.slot(id)
	if !ok {
		return 0, core.Errorf(core.ErrIndexOutOfBound, "identity %d is no longer stored", id)
	}
	next, ok := s.ids.at(slot + delta)
	if !ok {
		return 0, core.OutOfBound(slot+delta, s.Size())
	}
	return next, nil
}

func (c *control) first() (core.ID, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	id, ok := s.ids.first()
	if !ok {
		return 0, core.ErrSourceEmpty
	}
	return id, nil
}

func (c *control) last() (core.ID, error) {
	s, err := c.attached()
	if err != nil {
		return 0, err
	}
	id, ok := s.ids.last()
	if !ok {
		return 0, core.ErrSourceEmpty
	}
	return id, nil
}

// vector returns a copy of the member with the given identity.
func (c *control) vector(id core.ID) (*vector.Vector, error) {
	s, err := c.attached()
	if err != nil {
		return nil, err
	}
	slot, ok := s.ids.slot(id)
	if !ok {
		return nil, core.Errorf(core.ErrIndexOutOfBound, "identity %d is no longer stored", id)
	}
	return s.vectorAt(slot)
}

// coords writes the member with the given identity into dst.
func (c *control) coords(id core.ID, dst *vector.Vector) error {
	s, err := c.attached()
	if err != nil {
		return err
	}
	slot, ok := s.ids.slot(id)
	if !ok {
		return core.Errorf(core.ErrIndexOutOfBound, "identity %d is no longer stored", id)
	}
	return dst.SetData(s.row(slot))
}
