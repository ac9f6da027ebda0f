package vector

import (
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/distance"
)

// Vector is a dense, fixed-dimension tuple of float64 coordinates.
//
// No coordinate is ever NaN or infinite: every write that would produce
// such a value fails and leaves the vector untouched.
type Vector struct {
	data []float64
	log  *core.Logger
}

// Option configures a Vector.
type Option func(*Vector)

// WithLogger sets the logger failures of this vector are reported to.
// Vectors derived from it (clones, sums, differences) inherit the logger.
func WithLogger(l *core.Logger) Option {
	return func(v *Vector) {
		v.log = l
	}
}

// New creates a vector holding a copy of data.
func New(data []float64, opts ...Option) (*Vector, error) {
	v := &Vector{}
	for _, opt := range opts {
		opt(v)
	}

	if data == nil {
		return nil, v.log.Fail(core.Warning, core.ErrNullPointer)
	}
	if len(data) == 0 {
		return nil, v.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "dimension must be positive"))
	}
	if err := checkInput(data...); err != nil {
		return nil, v.log.Fail(core.Severe, err)
	}

	v.data = slices.Clone(data)
	return v, nil
}

// Zeros creates a zero vector of the given dimension.
func Zeros(dim int, opts ...Option) (*Vector, error) {
	v := &Vector{}
	for _, opt := range opts {
		opt(v)
	}
	if dim <= 0 {
		return nil, v.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "dimension must be positive, got %d", dim))
	}
	v.data = make([]float64, dim)
	return v, nil
}

// Clone returns an independent deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{
		data: slices.Clone(v.data),
		log:  v.log,
	}
}

// Logger returns the logger the vector reports to.
func (v *Vector) Logger() *core.Logger {
	return v.log
}

// Dim returns the number of coordinates.
func (v *Vector) Dim() int {
	return len(v.data)
}

// Data returns a copy of the coordinates.
func (v *Vector) Data() []float64 {
	return slices.Clone(v.data)
}

// All returns an iterator over (index, coordinate) pairs.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// SetData overwrites all coordinates at once.
func (v *Vector) SetData(data []float64) error {
	if data == nil {
		return v.log.Fail(core.Severe, core.ErrNullPointer)
	}
	if len(data) != len(v.data) {
		return v.log.Fail(core.Severe, core.Mismatch(len(v.data), len(data)))
	}
	if err := checkInput(data...); err != nil {
		return v.log.Fail(core.Severe, err)
	}
	copy(v.data, data)
	return nil
}

// Coordinate returns the i-th coordinate.
func (v *Vector) Coordinate(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, v.log.Fail(core.Severe, core.OutOfBound(i, len(v.data)))
	}
	return v.data[i], nil
}

// SetCoordinate sets the i-th coordinate.
func (v *Vector) SetCoordinate(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return v.log.Fail(core.Severe, core.OutOfBound(i, len(v.data)))
	}
	if err := checkInput(x); err != nil {
		return v.log.Fail(core.Severe, err)
	}
	v.data[i] = x
	return nil
}

// Scale multiplies every coordinate by k.
func (v *Vector) Scale(k float64) error {
	return v.ApplyFunction(func(x float64) float64 { return x * k })
}

// Increment adds other to v coordinate-wise.
func (v *Vector) Increment(other *Vector) error {
	if err := v.combine(other, plus); err != nil {
		return v.log.Fail(core.Severe, err)
	}
	return nil
}

// Decrement subtracts other from v coordinate-wise.
func (v *Vector) Decrement(other *Vector) error {
	if err := v.combine(other, minus); err != nil {
		return v.log.Fail(core.Severe, err)
	}
	return nil
}

func plus(a, b float64) float64  { return a + b }
func minus(a, b float64) float64 { return a - b }

// combine writes op(v, other) into v. It reports but does not log failures.
func (v *Vector) combine(other *Vector, op func(a, b float64) float64) error {
	if other == nil {
		return core.ErrNullPointer
	}
	if other.Dim() != v.Dim() {
		return core.Mismatch(v.Dim(), other.Dim())
	}

	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = op(v.data[i], other.data[i])
	}
	if err := checkResult(out); err != nil {
		return err
	}
	v.data = out
	return nil
}

// Norm returns the norm of v of the given kind.
func (v *Vector) Norm(kind distance.Norm) (float64, error) {
	n, err := distance.Of(kind, v.data)
	if err != nil {
		return 0, v.log.Fail(core.Warning, err)
	}
	return n, nil
}

// ApplyFunction replaces every coordinate x with f(x). If any result is
// NaN or infinite, v is left unchanged.
func (v *Vector) ApplyFunction(f func(float64) float64) error {
	if f == nil {
		return v.log.Fail(core.Severe, core.ErrNullPointer)
	}

	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}
	if err := checkResult(out); err != nil {
		return err
	}
	v.data = out
	return nil
}

// ForEach calls f with every coordinate in order.
func (v *Vector) ForEach(f func(float64)) {
	for _, x := range v.data {
		f(x)
	}
}

// checkInput rejects supplied values that are NaN or infinite.
func checkInput(data ...float64) error {
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return core.Errorf(core.ErrNotANumber, "coordinate %d is %v", i, x)
		}
	}
	return nil
}

// checkResult rejects computed values: NaN is NotANumber, an infinity is an overflow.
func checkResult(data []float64) error {
	for i, x := range data {
		if math.IsNaN(x) {
			return core.Errorf(core.ErrNotANumber, "coordinate %d is NaN", i)
		}
		if math.IsInf(x, 0) {
			return core.Errorf(core.ErrInfinityOverflow, "coordinate %d overflows", i)
		}
	}
	return nil
}
