package set

import (
	"iter"
	"math"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/distance"
	"github.com/hupe1980/vsmath/vector"
)

// Set is a growable collection of vectors of one dimension in which no two
// members lie within the insertion tolerance of each other.
//
// Members live in a flat row-major buffer addressed by slot (0-based,
// contiguous, reassigned on removal). Every member also carries an identity
// that is assigned once, never changes, and is never reused.
type Set struct {
	dim  int
	data []float64 // len == Size()*dim; cap is reserved against opts.resource

	ids    *identities
	nextID uint64

	ctrl   *control
	opts   options
	closed bool
}

// New creates an empty set. Its dimension is fixed by the first successful Insert.
func New(opts ...Option) *Set {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newSet(o)
}

func newSet(o options) *Set {
	s := &Set{
		ids:  newIdentities(),
		opts: o,
	}
	s.ctrl = newControl(s)
	return s
}

// Dim returns the dimension of the members, or 0 before the first insert.
func (s *Set) Dim() int {
	return s.dim
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.ids.len()
}

// Logger returns the logger the set reports to.
func (s *Set) Logger() *core.Logger {
	return s.opts.logger
}

// Insert adds a copy of v unless a member m already satisfies
// norm(|v-m|, kind) <= tol, in which case core.ErrVectorAlreadyExists is
// returned. The first successful insert fixes the set's dimension.
func (s *Set) Insert(v *vector.Vector, kind distance.Norm, tol float64) error {
	log := s.opts.logger
	if err := s.checkOpen(); err != nil {
		return log.Fail(core.Severe, err)
	}
	if v == nil {
		return log.Fail(core.Severe, core.ErrNullPointer)
	}
	if s.dim != 0 && v.Dim() != s.dim {
		return log.Fail(core.Warning, core.Mismatch(s.dim, v.Dim()))
	}
	if err := checkTolerance(kind, tol); err != nil {
		return log.Fail(core.Severe, err)
	}

	if err := s.insert(v.Data(), kind, tol); err != nil {
		sev := core.Severe
		if core.CodeOf(err) == core.VectorAlreadyExists {
			sev = core.Warning
		}
		return log.Fail(sev, err)
	}
	return nil
}

// insert appends x unless it duplicates a member. Arguments are already validated.
func (s *Set) insert(x []float64, kind distance.Norm, tol float64) error {
	for slot := range s.Size() {
		d, _ := distance.Separation(kind, x, s.row(slot))
		if d <= tol {
			return core.Errorf(core.ErrVectorAlreadyExists, "within %g of slot %d", tol, slot)
		}
	}

	if s.nextID > uint64(core.MaxID) {
		return core.Errorf(core.ErrAllocationFailure, "identity space exhausted")
	}
	if err := s.grow(len(s.data) + len(x)); err != nil {
		return err
	}

	s.dim = len(x)
	s.data = append(s.data, x...)
	s.ids.add(core.ID(s.nextID))
	s.nextID++
	return nil
}

// grow makes room for n coordinates, doubling the capacity as often as needed.
func (s *Set) grow(n int) error {
	c := cap(s.data)
	if n <= c {
		return nil
	}

	newCap := c
	if newCap == 0 {
		newCap = s.opts.initialCapacity * (n - len(s.data))
	}
	for newCap < n {
		newCap *= 2
	}
	return s.realloc(newCap)
}

// realloc moves the members into a buffer of the given capacity. The growth
// is charged to the resource controller before anything is allocated.
func (s *Set) realloc(capacity int) error {
	if err := s.opts.resource.AcquireFloats(capacity - cap(s.data)); err != nil {
		return err
	}
	data := make([]float64, len(s.data), capacity)
	copy(data, s.data)
	s.data = data
	return nil
}

// RemoveAt removes the member at slot. Members after it move down one slot
// and keep their identities.
func (s *Set) RemoveAt(slot int) error {
	if err := s.checkSlot(slot); err != nil {
		return s.opts.logger.Fail(core.Warning, err)
	}

	id, _ := s.ids.at(slot)
	copy(s.data[slot*s.dim:], s.data[(slot+1)*s.dim:])
	s.data = s.data[:len(s.data)-s.dim]
	s.ids.remove(id)
	return nil
}

// RemoveMatching removes every member m with norm(pattern-m, kind) < tol and
// returns how many were removed. Survivors keep their relative order.
func (s *Set) RemoveMatching(pattern *vector.Vector, kind distance.Norm, tol float64) (int, error) {
	log := s.opts.logger
	if s.Size() == 0 {
		return 0, log.Fail(core.Warning, core.ErrSourceEmpty)
	}
	if err := s.checkQuery(pattern, kind, tol); err != nil {
		return 0, log.Fail(core.Severe, err)
	}

	p := pattern.Data()
	var removed []core.ID
	w := 0
	slot := 0
	for id := range s.ids.all() {
		row := s.row(slot)
		slot++
		if matches(kind, tol, p, row) {
			removed = append(removed, id)
			continue
		}
		copy(s.data[w*s.dim:], row)
		w++
	}

	if len(removed) == 0 {
		return 0, log.Fail(core.Info, core.ErrVectorNotFound)
	}

	s.data = s.data[:w*s.dim]
	for _, id := range removed {
		s.ids.remove(id)
	}
	return len(removed), nil
}

// FindFirst returns the slot of the first member m, in slot order, with
// norm(pattern-m, kind) < tol.
func (s *Set) FindFirst(pattern *vector.Vector, kind distance.Norm, tol float64) (int, error) {
	slot, err := s.find(pattern, kind, tol)
	if err != nil {
		return 0, s.opts.logger.Fail(severityOf(err), err)
	}
	return slot, nil
}

// FindFirstAndCopy is FindFirst returning a copy of the match.
func (s *Set) FindFirstAndCopy(pattern *vector.Vector, kind distance.Norm, tol float64) (*vector.Vector, error) {
	slot, err := s.find(pattern, kind, tol)
	if err != nil {
		return nil, s.opts.logger.Fail(severityOf(err), err)
	}
	return s.vectorAt(slot)
}

// FindFirstAndCopyCoords is FindFirst writing the match into dst.
func (s *Set) FindFirstAndCopyCoords(pattern *vector.Vector, kind distance.Norm, tol float64, dst *vector.Vector) error {
	if dst == nil {
		return s.opts.logger.Fail(core.Severe, core.ErrNullPointer)
	}
	slot, err := s.find(pattern, kind, tol)
	if err != nil {
		return s.opts.logger.Fail(severityOf(err), err)
	}
	return dst.SetData(s.row(slot))
}

func (s *Set) find(pattern *vector.Vector, kind distance.Norm, tol float64) (int, error) {
	if err := s.checkQuery(pattern, kind, tol); err != nil {
		return 0, err
	}
	if slot := s.indexOf(pattern.Data(), kind, tol); slot >= 0 {
		return slot, nil
	}
	return 0, core.ErrVectorNotFound
}

// indexOf returns the first slot matching p, or -1.
func (s *Set) indexOf(p []float64, kind distance.Norm, tol float64) int {
	for slot := range s.Size() {
		if matches(kind, tol, p, s.row(slot)) {
			return slot
		}
	}
	return -1
}

// Copy returns a copy of the member at slot.
func (s *Set) Copy(slot int) (*vector.Vector, error) {
	if err := s.checkSlot(slot); err != nil {
		return nil, s.opts.logger.Fail(core.Warning, err)
	}
	return s.vectorAt(slot)
}

// Coords writes the member at slot into dst.
func (s *Set) Coords(slot int, dst *vector.Vector) error {
	if err := s.checkSlot(slot); err != nil {
		return s.opts.logger.Fail(core.Warning, err)
	}
	if dst == nil {
		return s.opts.logger.Fail(core.Warning, core.ErrNullPointer)
	}
	return dst.SetData(s.row(slot))
}

// ID returns the identity of the member at slot.
func (s *Set) ID(slot int) (core.ID, error) {
	if err := s.checkSlot(slot); err != nil {
		return 0, s.opts.logger.Fail(core.Warning, err)
	}
	id, _ := s.ids.at(slot)
	return id, nil
}

// Slot returns the current slot of the member with the given identity.
func (s *Set) Slot(id core.ID) (int, error) {
	slot, ok := s.ids.slot(id)
	if !ok {
		return 0, s.opts.logger.Fail(core.Warning, core.Errorf(core.ErrVectorNotFound, "identity %d", id))
	}
	return slot, nil
}

// All iterates the members in slot order, yielding each identity with a
// copy of its coordinates. The set must not be modified during iteration.
func (s *Set) All() iter.Seq2[core.ID, []float64] {
	return func(yield func(core.ID, []float64) bool) {
		slot := 0
		for id := range s.ids.all() {
			row := make([]float64, s.dim)
			copy(row, s.row(slot))
			slot++
			if !yield(id, row) {
				return
			}
		}
	}
}

// Clone returns a deep copy with the same members, identities and identity
// counter. The copy is charged to the same resource controller and gets a
// control block of its own.
func (s *Set) Clone() (*Set, error) {
	if err := s.checkOpen(); err != nil {
		return nil, s.opts.logger.Fail(core.Severe, err)
	}
	c := &Set{
		dim:    s.dim,
		ids:    s.ids.clone(),
		nextID: s.nextID,
		opts:   s.opts,
	}
	if err := c.realloc(len(s.data)); err != nil {
		return nil, s.opts.logger.Fail(core.Severe, err)
	}
	c.data = append(c.data, s.data...)
	c.ctrl = newControl(c)
	return c, nil
}

// Close releases the set's storage and detaches its control block.
// Iterators obtained from the set fail with core.ErrIndexOutOfBound
// afterwards; Insert, Clone and Iterator fail with core.ErrInvalidArgument.
// Read-only queries see an empty set.
func (s *Set) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	s.ctrl.detach()
	s.opts.resource.ReleaseFloats(cap(s.data))
	s.data = nil
	s.ids = newIdentities()
	return nil
}

func (s *Set) checkOpen() error {
	if s.closed {
		return core.Errorf(core.ErrInvalidArgument, "set is closed")
	}
	return nil
}

func (s *Set) row(slot int) []float64 {
	return s.data[slot*s.dim : (slot+1)*s.dim]
}

func (s *Set) vectorAt(slot int) (*vector.Vector, error) {
	return vector.New(s.row(slot), vector.WithLogger(s.opts.logger))
}

func (s *Set) checkSlot(slot int) error {
	n := s.Size()
	if n == 0 {
		return core.ErrSourceEmpty
	}
	if slot < 0 || slot >= n {
		return core.OutOfBound(slot, n)
	}
	return nil
}

// checkQuery validates the arguments of every pattern lookup.
func (s *Set) checkQuery(pattern *vector.Vector, kind distance.Norm, tol float64) error {
	if pattern == nil {
		return core.ErrNullPointer
	}
	if s.dim != 0 && pattern.Dim() != s.dim {
		return core.Mismatch(s.dim, pattern.Dim())
	}
	return checkTolerance(kind, tol)
}

func checkTolerance(kind distance.Norm, tol float64) error {
	switch {
	case !kind.Valid():
		return core.Errorf(core.ErrInvalidArgument, "unsupported norm %v", kind)
	case tol < 0:
		return core.Errorf(core.ErrInvalidArgument, "negative tolerance %g", tol)
	case math.IsNaN(tol):
		return core.Errorf(core.ErrNotANumber, "tolerance is NaN")
	case math.IsInf(tol, 0):
		return core.Errorf(core.ErrInfinityOverflow, "tolerance is %v", tol)
	}
	return nil
}

// matches reports norm(p-row, kind) < tol. kind must be valid.
func matches(kind distance.Norm, tol float64, p, row []float64) bool {
	d, _ := distance.Between(kind, p, row)
	return d < tol
}

// severityOf keeps misses quiet: a lookup that finds nothing is routine.
func severityOf(err error) core.Severity {
	if core.CodeOf(err) == core.VectorNotFound {
		return core.Info
	}
	return core.Severe
}
