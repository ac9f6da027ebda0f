package set

import (
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/distance"
)

// Membership in every operation below means FindFirst semantics: x belongs
// to s when some member m has norm(x-m, kind) < tol. Results are new sets
// that share a's logger and resource controller.

// Union returns a copy of a extended by every member of b that a lacks.
func Union(a, b *Set, kind distance.Norm, tol float64) (*Set, error) {
	if err := checkOperands(a, b, kind, tol); err != nil {
		return nil, loggerOf(a, b).Fail(core.Severe, err)
	}

	r, err := a.Clone()
	if err != nil {
		return nil, err
	}
	for slot := range b.Size() {
		x := b.row(slot)
		if r.indexOf(x, kind, tol) >= 0 {
			continue
		}
		if err := r.absorb(x, kind, tol); err != nil {
			_ = r.Close()
			return nil, a.opts.logger.Fail(core.Severe, err)
		}
	}
	return r, nil
}

// Intersection returns the members of a found in b together with the
// members of b found in a.
func Intersection(a, b *Set, kind distance.Norm, tol float64) (*Set, error) {
	if err := checkOperands(a, b, kind, tol); err != nil {
		return nil, loggerOf(a, b).Fail(core.Severe, err)
	}

	r := a.empty()
	for _, pair := range [][2]*Set{{a, b}, {b, a}} {
		from, in := pair[0], pair[1]
		for slot := range from.Size() {
			x := from.row(slot)
			if in.indexOf(x, kind, tol) < 0 {
				continue
			}
			if err := r.absorb(x, kind, tol); err != nil {
				_ = r.Close()
				return nil, a.opts.logger.Fail(core.Severe, err)
			}
		}
	}
	return r, nil
}

// Subtract returns the members of a not found in b.
func Subtract(a, b *Set, kind distance.Norm, tol float64) (*Set, error) {
	if err := checkOperands(a, b, kind, tol); err != nil {
		return nil, loggerOf(a, b).Fail(core.Severe, err)
	}

	r := a.empty()
	for slot := range a.Size() {
		x := a.row(slot)
		if b.indexOf(x, kind, tol) >= 0 {
			continue
		}
		if err := r.absorb(x, kind, tol); err != nil {
			_ = r.Close()
			return nil, a.opts.logger.Fail(core.Severe, err)
		}
	}
	return r, nil
}

// SymmetricDifference returns Subtract(Union(a, b), Intersection(a, b)).
func SymmetricDifference(a, b *Set, kind distance.Norm, tol float64) (*Set, error) {
	u, err := Union(a, b, kind, tol)
	if err != nil {
		return nil, err
	}
	defer u.Close()

	i, err := Intersection(a, b, kind, tol)
	if err != nil {
		return nil, err
	}
	defer i.Close()

	return Subtract(u, i, kind, tol)
}

// Subset reports whether every member of a is found in b. Invalid operands
// are logged and reported as false.
func Subset(a, b *Set, kind distance.Norm, tol float64) bool {
	if err := checkOperands(a, b, kind, tol); err != nil {
		loggerOf(a, b).Report(core.Warning, err)
		return false
	}
	for slot := range a.Size() {
		if b.indexOf(a.row(slot), kind, tol) < 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same size and each is a subset of
// the other.
func Equal(a, b *Set, kind distance.Norm, tol float64) bool {
	if err := checkOperands(a, b, kind, tol); err != nil {
		loggerOf(a, b).Report(core.Warning, err)
		return false
	}
	if a.Size() != b.Size() {
		return false
	}
	return Subset(a, b, kind, tol) && Subset(b, a, kind, tol)
}

// empty returns a new empty set configured like s.
func (s *Set) empty() *Set {
	return newSet(s.opts)
}

// absorb inserts x, treating a near-duplicate as already present.
func (s *Set) absorb(x []float64, kind distance.Norm, tol float64) error {
	if err := s.insert(x, kind, tol); err != nil && core.CodeOf(err) != core.VectorAlreadyExists {
		return err
	}
	return nil
}

func checkOperands(a, b *Set, kind distance.Norm, tol float64) error {
	if a == nil || b == nil {
		return core.ErrNullPointer
	}
	if a.dim != 0 && b.dim != 0 && a.dim != b.dim {
		return core.Mismatch(a.dim, b.dim)
	}
	return checkTolerance(kind, tol)
}

func loggerOf(a, b *Set) *core.Logger {
	if a != nil {
		return a.opts.logger
	}
	if b != nil {
		return b.opts.logger
	}
	return nil
}
