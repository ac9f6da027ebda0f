package set

import (
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/vector"
)

// Iterator walks a Set in identity order.
//
// It holds an identity rather than a slot and resolves it through the set's
// control block on every call, so it survives insertions and removals of
// other members. Once its own member is removed, or it steps past either
// end, it becomes invalid until MakeBegin or MakeEnd repositions it.
type Iterator struct {
	ctrl  *control
	id    core.ID
	valid bool
	log   *core.Logger
}

// Iterator returns an iterator positioned at slot.
func (s *Set) Iterator(slot int) (*Iterator, error) {
	if err := s.checkOpen(); err != nil {
		return nil, s.opts.logger.Fail(core.Severe, err)
	}
	if err := s.checkSlot(slot); err != nil {
		return nil, s.opts.logger.Fail(core.Severe, err)
	}
	id, _ := s.ids.at(slot)
	return &Iterator{
		ctrl:  s.ctrl,
		id:    id,
		valid: true,
		log:   s.opts.logger,
	}, nil
}

// Begin returns an iterator positioned at slot 0.
func (s *Set) Begin() (*Iterator, error) {
	return s.Iterator(0)
}

// End returns an iterator positioned at the last slot.
func (s *Set) End() (*Iterator, error) {
	return s.Iterator(s.Size() - 1)
}

// Valid reports whether the iterator points at a member.
func (it *Iterator) Valid() bool {
	return it.valid
}

// ID returns the identity of the current member.
func (it *Iterator) ID() core.ID {
	return it.id
}

// Next moves to the following member.
func (it *Iterator) Next() error {
	return it.log.Fail(core.Info, it.move(1))
}

// NextN moves step members forward.
func (it *Iterator) NextN(step int) error {
	if step < 0 {
		return it.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "negative step %d", step))
	}
	return it.log.Fail(core.Info, it.move(step))
}

// Previous moves to the preceding member.
func (it *Iterator) Previous() error {
	return it.log.Fail(core.Info, it.move(-1))
}

// PreviousN moves step members backward.
func (it *Iterator) PreviousN(step int) error {
	if step < 0 {
		return it.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "negative step %d", step))
	}
	return it.log.Fail(core.Info, it.move(-step))
}

func (it *Iterator) move(delta int) error {
	if !it.valid {
		return core.Errorf(core.ErrIndexOutOfBound, "iterator is exhausted")
	}
	id, err := it.ctrl.step(it.id, delta)
	if err != nil {
		it.valid = false
		return err
	}
	it.id = id
	return nil
}

// MakeBegin repositions the iterator at the first member.
func (it *Iterator) MakeBegin() error {
	return it.log.Fail(core.Warning, it.reposition(it.ctrl.first))
}

// MakeEnd repositions the iterator at the last member.
func (it *Iterator) MakeEnd() error {
	return it.log.Fail(core.Warning, it.reposition(it.ctrl.last))
}

func (it *Iterator) reposition(locate func() (core.ID, error)) error {
	id, err := locate()
	if err != nil {
		it.valid = false
		return err
	}
	it.id = id
	it.valid = true
	return nil
}

// Clone returns an independent iterator at the same position.
func (it *Iterator) Clone() *Iterator {
	c := *it
	return &c
}

// Following returns a copy moved step members forward. The copy is invalid
// if the move fails.
func (it *Iterator) Following(step int) *Iterator {
	c := it.Clone()
	_ = c.NextN(step)
	return c
}

// Preceding returns a copy moved step members backward. The copy is invalid
// if the move fails.
func (it *Iterator) Preceding(step int) *Iterator {
	c := it.Clone()
	_ = c.PreviousN(step)
	return c
}

// VectorCopy returns a copy of the current member, read from the set at
// the time of the call.
func (it *Iterator) VectorCopy() (*vector.Vector, error) {
	if !it.valid {
		return nil, it.log.Fail(core.Warning, core.Errorf(core.ErrIndexOutOfBound, "iterator is exhausted"))
	}
	v, err := it.ctrl.vector(it.id)
	if err != nil {
		return nil, it.log.Fail(core.Warning, err)
	}
	return v, nil
}

// VectorCoords writes the current member into dst.
func (it *Iterator) VectorCoords(dst *vector.Vector) error {
	if dst == nil {
		return it.log.Fail(core.Severe, core.ErrNullPointer)
	}
	if !it.valid {
		return it.log.Fail(core.Warning, core.Errorf(core.ErrIndexOutOfBound, "iterator is exhausted"))
	}
	if err := it.ctrl.coords(it.id, dst); err != nil {
		return it.log.Fail(core.Warning, err)
	}
	return nil
}
