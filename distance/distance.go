package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/vsmath/core"
)

// Norm selects the metric used for tolerance-based vector comparison.
type Norm int

const (
	L1 Norm = iota
	L2
	Chebyshev
)

func (n Norm) String() string {
	switch n {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case Chebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", n)
	}
}

// Valid reports whether n is one of the supported norms.
func (n Norm) Valid() bool {
	return n >= L1 && n <= Chebyshev
}

// chebyshevEpsilon is the margin by which a coordinate must exceed the
// running maximum to replace it.
const chebyshevEpsilon = 1e-6

// L1Norm returns the sum of absolute values of x.
func L1Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += math.Abs(v)
	}
	return sum
}

// L2Norm returns the Euclidean length of x.
func L2Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// ChebyshevNorm scans x[1:] against x[0] and returns the largest raw value
// found. Values are compared signed, not by magnitude, so an all-negative
// input yields a negative result.
func ChebyshevNorm(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	maxVal := x[0]
	for _, v := range x[1:] {
		if v-maxVal > chebyshevEpsilon {
			maxVal = v
		}
	}
	return maxVal
}

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Func is a norm kernel.
type Func func(x []float64) float64

// Provider returns the kernel for the given norm.
func Provider(n Norm) (Func, error) {
	switch n {
	case L1:
		return L1Norm, nil
	case L2:
		return L2Norm, nil
	case Chebyshev:
		return ChebyshevNorm, nil
	default:
		return nil, core.Errorf(core.ErrInvalidArgument, "unsupported norm %v", n)
	}
}

// Of returns the n-norm of x.
func Of(n Norm, x []float64) (float64, error) {
	f, err := Provider(n)
	if err != nil {
		return 0, err
	}
	return f(x), nil
}

// Between returns the n-norm of a-b.
func Between(n Norm, a, b []float64) (float64, error) {
	return diffNorm(n, a, b, false)
}

// Separation returns the n-norm of the coordinate-wise |a-b|. It differs
// from Between only for Chebyshev, where it yields the true largest gap.
func Separation(n Norm, a, b []float64) (float64, error) {
	return diffNorm(n, a, b, true)
}

func diffNorm(n Norm, a, b []float64, abs bool) (float64, error) {
	f, err := Provider(n)
	if err != nil {
		return 0, err
	}
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
		if abs {
			diff[i] = math.Abs(diff[i])
		}
	}
	return f(diff), nil
}
