package set

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/internal/conv"
)

// identities is the identity table of a Set: a roaring bitmap of the
// identities currently stored.
//
// Identities are assigned in increasing order and storage keeps insertion
// order, so the rank of an identity is its slot and vice versa.
type identities struct {
	rb *roaring.Bitmap
}

func newIdentities() *identities {
	return &identities{
		rb: roaring.New(),
	}
}

func (t *identities) add(id core.ID) {
	t.rb.Add(uint32(id))
}

func (t *identities) remove(id core.ID) {
	t.rb.Remove(uint32(id))
}

func (t *identities) contains(id core.ID) bool {
	return t.rb.Contains(uint32(id))
}

func (t *identities) len() int {
	return int(t.rb.GetCardinality())
}

// slot returns the storage position of id.
func (t *identities) slot(id core.ID) (int, bool) {
	if !t.rb.Contains(uint32(id)) {
		return 0, false
	}
	r, err := conv.Uint64ToInt(t.rb.Rank(uint32(id)))
	if err != nil {
		return 0, false
	}
	return r - 1, true
}

// at returns the identity stored at slot.
func (t *identities) at(slot int) (core.ID, bool) {
	if slot < 0 || slot >= t.len() {
		return 0, false
	}
	s, err := conv.IntToUint32(slot)
	if err != nil {
		return 0, false
	}
	id, err := t.rb.Select(s)
	if err != nil {
		return 0, false
	}
	return core.ID(id), true
}

func (t *identities) first() (core.ID, bool) {
	if t.rb.IsEmpty() {
		return 0, false
	}
	return core.ID(t.rb.Minimum()), true
}

func (t *identities) last() (core.ID, bool) {
	if t.rb.IsEmpty() {
		return 0, false
	}
	return core.ID(t.rb.Maximum()), true
}

func (t *identities) clone() *identities {
	return &identities{
		rb: t.rb.Clone(),
	}
}

// all iterates identities in slot order.
func (t *identities) all() iter.Seq[core.ID] {
	return func(yield func(core.ID) bool) {
		it := t.rb.Iterator()
		for it.HasNext() {
			if !yield(core.ID(it.Next())) {
				return
			}
		}
	}
}
