package vector

import (
	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/distance"
)

// Add returns a+b as a new vector carrying a's logger.
func Add(a, b *Vector) (*Vector, error) {
	if err := checkPair(a, b); err != nil {
		return nil, loggerOf(a, b).Fail(core.Severe, err)
	}
	sum := a.Clone()
	if err := sum.combine(b, plus); err != nil {
		return nil, a.log.Fail(core.Severe, err)
	}
	return sum, nil
}

// Sub returns a-b as a new vector carrying a's logger.
func Sub(a, b *Vector) (*Vector, error) {
	if err := checkPair(a, b); err != nil {
		return nil, loggerOf(a, b).Fail(core.Severe, err)
	}
	diff := a.Clone()
	if err := diff.combine(b, minus); err != nil {
		return nil, a.log.Fail(core.Severe, err)
	}
	return diff, nil
}

// Dot returns the sum of the coordinate-wise products of a and b.
func Dot(a, b *Vector) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, loggerOf(a, b).Fail(core.Severe, err)
	}
	return distance.Dot(a.data, b.data), nil
}

// Equals reports whether the kind-norm of a-b is strictly below tol.
// Invalid input (nil operands, mismatched dimensions, an unknown norm or a
// negative tolerance) is logged and compares unequal.
func Equals(a, b *Vector, kind distance.Norm, tol float64) bool {
	if err := checkPair(a, b); err != nil {
		loggerOf(a, b).Report(core.Severe, err)
		return false
	}
	if tol < 0 {
		a.log.Report(core.Severe, core.Errorf(core.ErrInvalidArgument, "negative tolerance %v", tol))
		return false
	}
	d, err := distance.Between(kind, a.data, b.data)
	if err != nil {
		a.log.Report(core.Severe, err)
		return false
	}
	return d < tol
}

// Copy overwrites dst's coordinates with src's. The two vectors must not
// share storage.
func Copy(dst, src *Vector) error {
	if dst == nil || src == nil {
		return loggerOf(dst, src).Fail(core.Severe, core.ErrNullPointer)
	}
	if dst == src || (len(dst.data) > 0 && len(src.data) > 0 && &dst.data[0] == &src.data[0]) {
		return src.log.Fail(core.Severe, core.ErrMemoryAliasing)
	}
	if dst.Dim() != src.Dim() {
		return src.log.Fail(core.Severe, core.Mismatch(dst.Dim(), src.Dim()))
	}
	copy(dst.data, src.data)
	return nil
}

func checkPair(a, b *Vector) error {
	if a == nil || b == nil {
		return core.ErrNullPointer
	}
	if a.Dim() != b.Dim() {
		return core.Mismatch(a.Dim(), b.Dim())
	}
	return nil
}

func loggerOf(vs ...*Vector) *core.Logger {
	for _, v := range vs {
		if v != nil {
			return v.log
		}
	}
	return nil
}
