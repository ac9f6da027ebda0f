package multiindex

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/vsmath/core"
)

// MultiIndex is a fixed-dimension tuple of unsigned integers.
type MultiIndex struct {
	data []uint64
	log  *core.Logger
}

// Option configures a MultiIndex.
type Option func(*MultiIndex)

// WithLogger sets the logger failures of this index are reported to.
func WithLogger(l *core.Logger) Option {
	return func(m *MultiIndex) {
		m.log = l
	}
}

func apply(opts []Option) *MultiIndex {
	m := &MultiIndex{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// New creates an index holding a copy of data.
func New(data []uint64, opts ...Option) (*MultiIndex, error) {
	m := apply(opts)
	if data == nil {
		return nil, m.log.Fail(core.Warning, core.ErrNullPointer)
	}
	if len(data) == 0 {
		return nil, m.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "dimension must be positive"))
	}
	m.data = slices.Clone(data)
	return m, nil
}

// Filled creates an index of the given dimension with every axis set to value.
func Filled(dim int, value uint64, opts ...Option) (*MultiIndex, error) {
	m := apply(opts)
	if dim <= 0 {
		return nil, m.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "dimension must be positive, got %d", dim))
	}
	m.data = make([]uint64, dim)
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// Clone returns an independent copy of m.
func (m *MultiIndex) Clone() *MultiIndex {
	return &MultiIndex{
		data: slices.Clone(m.data),
		log:  m.log,
	}
}

// Logger returns the logger the index reports to.
func (m *MultiIndex) Logger() *core.Logger {
	return m.log
}

// Dim returns the number of axes.
func (m *MultiIndex) Dim() int {
	return len(m.data)
}

// Data returns a copy of the axis values.
func (m *MultiIndex) Data() []uint64 {
	return slices.Clone(m.data)
}

// SetData overwrites every axis at once.
func (m *MultiIndex) SetData(data []uint64) error {
	if data == nil {
		return m.log.Fail(core.Severe, core.ErrNullPointer)
	}
	if len(data) != len(m.data) {
		return m.log.Fail(core.Severe, core.Mismatch(len(m.data), len(data)))
	}
	copy(m.data, data)
	return nil
}

// Axis returns the value at axis i.
func (m *MultiIndex) Axis(i int) (uint64, error) {
	if i < 0 || i >= len(m.data) {
		return 0, m.log.Fail(core.Severe, core.OutOfBound(i, len(m.data)))
	}
	return m.data[i], nil
}

// SetAxis sets the value at axis i.
func (m *MultiIndex) SetAxis(i int, v uint64) error {
	if i < 0 || i >= len(m.data) {
		return m.log.Fail(core.Severe, core.OutOfBound(i, len(m.data)))
	}
	m.data[i] = v
	return nil
}

// IncrementAxis adds delta to axis i. A negative delta decrements.
// Results below zero or above math.MaxUint64 are rejected.
func (m *MultiIndex) IncrementAxis(i int, delta int64) error {
	if i < 0 || i >= len(m.data) {
		return m.log.Fail(core.Severe, core.OutOfBound(i, len(m.data)))
	}

	cur := m.data[i]
	if delta < 0 {
		// -delta overflows for MinInt64; the unsigned conversion handles it.
		dec := uint64(-(delta + 1)) + 1
		if dec > cur {
			return m.log.Fail(core.Severe, core.Errorf(core.ErrInvalidArgument, "axis %d: %d%+d is negative", i, cur, delta))
		}
		m.data[i] = cur - dec
		return nil
	}

	inc := uint64(delta)
	if inc > math.MaxUint64-cur {
		return m.log.Fail(core.Severe, core.Errorf(core.ErrInfinityOverflow, "axis %d: %d%+d overflows", i, cur, delta))
	}
	m.data[i] = cur + inc
	return nil
}

// Equal reports whether m and other have the same dimension and values.
func (m *MultiIndex) Equal(other *MultiIndex) bool {
	if m == nil || other == nil {
		return m == other
	}
	return slices.Equal(m.data, other.data)
}

// IsPermutation reports whether the values of m are exactly 0..Dim()-1 in some order.
func (m *MultiIndex) IsPermutation() bool {
	seen := make([]bool, len(m.data))
	for _, v := range m.data {
		if v >= uint64(len(m.data)) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (m *MultiIndex) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range m.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
