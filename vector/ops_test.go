package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/distance"
	"github.com/hupe1980/vsmath/testutil"
)

func TestDotLiteral(t *testing.T) {
	a := mustNew(t, 1, 5.5, 6, 8.5)
	b := mustNew(t, 5, 3, 9, 7)

	ab, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 135.0, ab)

	ba, err := Dot(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)

	_, err = Dot(a, mustNew(t, 1))
	assert.ErrorIs(t, err, core.ErrMismatchingDimensions)
	_, err = Dot(nil, a)
	assert.ErrorIs(t, err, core.ErrNullPointer)
}

func TestAddSub(t *testing.T) {
	a := mustNew(t, 1, 5.5, 6, 8.5)
	b := mustNew(t, 5, 3, 9, 7)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8.5, 15, 15.5}, sum.Data())

	back, err := Sub(sum, b)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())
	assert.False(t, Equals(back, a, distance.L1, 0))
	assert.True(t, Equals(back, a, distance.L1, 1e-300))

	// Operands are untouched.
	assert.Equal(t, []float64{1, 5.5, 6, 8.5}, a.Data())
	assert.Equal(t, []float64{5, 3, 9, 7}, b.Data())

	_, err = Add(a, nil)
	assert.ErrorIs(t, err, core.ErrNullPointer)
	_, err = Sub(a, mustNew(t, 1, 2))
	assert.ErrorIs(t, err, core.ErrMismatchingDimensions)
}

func TestRandomIdentities(t *testing.T) {
	rng := testutil.NewRNG(42)
	rows := rng.UniformVectors(64, 7, -10, 10)

	for i := 1; i < len(rows); i++ {
		a := mustNew(t, rows[i-1]...)
		b := mustNew(t, rows[i]...)

		ab, err := Dot(a, b)
		require.NoError(t, err)
		ba, err := Dot(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)

		sum, err := Add(a, b)
		require.NoError(t, err)
		back, err := Sub(sum, b)
		require.NoError(t, err)
		assert.True(t, Equals(back, a, distance.L2, 1e-9), "row %d: %v != %v", i, back.Data(), a.Data())

		aa, err := Dot(a, a)
		require.NoError(t, err)
		n, err := a.Norm(distance.L2)
		require.NoError(t, err)
		assert.InDelta(t, aa, n*n, 1e-9*aa)
	}
}

func TestEquals(t *testing.T) {
	a := mustNew(t, 0, 0)
	b := mustNew(t, 3, 4)

	tests := []struct {
		name string
		kind distance.Norm
		tol  float64
		want bool
	}{
		{"L2Strict", distance.L2, 5, false},
		{"L2Within", distance.L2, 5.0001, true},
		{"L1", distance.L1, 7.5, true},
		{"L1Boundary", distance.L1, 7, false},
		// a-b = [-3, -4]: the raw Chebyshev scan yields -3.
		{"ChebyshevRaw", distance.Chebyshev, 0.1, true},
		{"NegativeTol", distance.L2, -1, false},
		{"UnknownNorm", distance.Norm(9), 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equals(a, b, tt.kind, tt.tol))
		})
	}

	assert.False(t, Equals(a, nil, distance.L2, 1))
	assert.False(t, Equals(a, mustNew(t, 0), distance.L2, 1))
}

func TestCopy(t *testing.T) {
	src := mustNew(t, 1, 2)
	dst := mustNew(t, 0, 0)

	require.NoError(t, Copy(dst, src))
	assert.Equal(t, []float64{1, 2}, dst.Data())

	require.NoError(t, src.SetCoordinate(0, 9))
	assert.Equal(t, []float64{1, 2}, dst.Data())

	assert.ErrorIs(t, Copy(src, src), core.ErrMemoryAliasing)
	assert.ErrorIs(t, Copy(mustNew(t, 1), src), core.ErrMismatchingDimensions)
	assert.ErrorIs(t, Copy(nil, src), core.ErrNullPointer)
	assert.ErrorIs(t, Copy(dst, nil), core.ErrNullPointer)
}
