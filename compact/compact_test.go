package compact

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vsmath/core"
	"github.com/hupe1980/vsmath/multiindex"
	"github.com/hupe1980/vsmath/vector"
)

func vec(t *testing.T, data ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.New(data)
	require.NoError(t, err)
	return v
}

func idx(t *testing.T, data ...uint64) *multiindex.MultiIndex {
	t.Helper()
	m, err := multiindex.New(data)
	require.NoError(t, err)
	return m
}

func square(t *testing.T) *Compact {
	t.Helper()
	c, err := New(vec(t, 0, 0), vec(t, 5, 5), idx(t, 6, 6))
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := square(t)
	assert.Equal(t, 2, c.Dim())

	tests := []struct {
		name        string
		left, right *vector.Vector
		grid        *multiindex.MultiIndex
		want        error
	}{
		{"NilLeft", nil, vec(t, 1), idx(t, 2), core.ErrNullPointer},
		{"NilGrid", vec(t, 0), vec(t, 1), nil, core.ErrNullPointer},
		{"RightDim", vec(t, 0), vec(t, 1, 1), idx(t, 2), core.ErrMismatchingDimensions},
		{"GridDim", vec(t, 0), vec(t, 1), idx(t, 2, 2), core.ErrMismatchingDimensions},
		{"Inverted", vec(t, 0, 3), vec(t, 1, 2), idx(t, 2, 2), core.ErrInvalidArgument},
		{"GridTooSmall", vec(t, 0, 0), vec(t, 1, 1), idx(t, 2, 1), core.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.left, tt.right, tt.grid)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, c)
		})
	}

	t.Run("Degenerate", func(t *testing.T) {
		_, err := New(vec(t, 1), vec(t, 1), idx(t, 2))
		require.NoError(t, err)
	})
}

func TestCopiesInputs(t *testing.T) {
	left := vec(t, 0, 0)
	grid := idx(t, 6, 6)
	c, err := New(left, vec(t, 5, 5), grid)
	require.NoError(t, err)

	require.NoError(t, left.SetCoordinate(0, -100))
	require.NoError(t, grid.SetAxis(0, 100))

	assert.Equal(t, []float64{0, 0}, c.LeftBoundary().Data())
	assert.Equal(t, []uint64{6, 6}, c.Grid().Data())

	got := c.RightBoundary()
	require.NoError(t, got.SetCoordinate(0, 0))
	assert.Equal(t, []float64{5, 5}, c.RightBoundary().Data())
}

func TestVectorCopy(t *testing.T) {
	c := square(t)

	tests := []struct {
		index []uint64
		want  []float64
	}{
		{[]uint64{1, 1}, []float64{0, 0}},
		{[]uint64{6, 6}, []float64{5, 5}},
		{[]uint64{3, 3}, []float64{2, 2}},
		{[]uint64{2, 5}, []float64{1, 4}},
	}

	for _, tt := range tests {
		v, err := c.VectorCopy(idx(t, tt.index...))
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.Data(), "index %v", tt.index)
	}

	_, err := c.VectorCopy(idx(t, 0, 1))
	assert.ErrorIs(t, err, core.ErrIndexOutOfBound)
	_, err = c.VectorCopy(idx(t, 1, 7))
	assert.ErrorIs(t, err, core.ErrIndexOutOfBound)
	_, err = c.VectorCopy(idx(t, 1))
	assert.ErrorIs(t, err, core.ErrMismatchingDimensions)
	_, err = c.VectorCopy(nil)
	assert.ErrorIs(t, err, core.ErrNullPointer)
}

func TestVectorCoords(t *testing.T) {
	c, err := New(vec(t, -1, 10), vec(t, 1, 18), idx(t, 3, 5))
	require.NoError(t, err)

	dst := vec(t, 0, 0)
	require.NoError(t, c.VectorCoords(idx(t, 2, 4), dst))
	assert.Equal(t, []float64{0, 16}, dst.Data())

	assert.ErrorIs(t, c.VectorCoords(idx(t, 2, 4), nil), core.ErrNullPointer)
	assert.ErrorIs(t, c.VectorCoords(idx(t, 2, 4), vec(t, 0)), core.ErrMismatchingDimensions)
	assert.ErrorIs(t, c.VectorCoords(idx(t, 4, 4), dst), core.ErrIndexOutOfBound)
	assert.Equal(t, []float64{0, 16}, dst.Data())
}

func TestIsInside(t *testing.T) {
	c := square(t)

	assert.True(t, c.IsInside(vec(t, 0, 0)))
	assert.True(t, c.IsInside(vec(t, 5, 2.5)))
	assert.False(t, c.IsInside(vec(t, 5.0001, 1)))
	assert.False(t, c.IsInside(vec(t, 1, -0.1)))
	assert.False(t, c.IsInside(vec(t, 1)))
	assert.False(t, c.IsInside(nil))
}

func TestClone(t *testing.T) {
	c := square(t)
	cl := c.Clone()

	assert.Equal(t, c.LeftBoundary().Data(), cl.LeftBoundary().Data())
	assert.Equal(t, c.RightBoundary().Data(), cl.RightBoundary().Data())
	assert.True(t, c.Grid().Equal(cl.Grid()))

	require.NoError(t, c.Close())
	order := idx(t, 0, 1)
	it, err := cl.Begin(order)
	require.NoError(t, err)
	require.NoError(t, it.Next())
}

func TestLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	l := core.NewLogger(slog.NewJSONHandler(&buf, nil))

	c, err := New(vec(t, 0), vec(t, 1), idx(t, 2), WithLogger(l))
	require.NoError(t, err)
	assert.Same(t, l, c.Logger())
	assert.Same(t, l, c.Clone().Logger())
	assert.Same(t, l, c.LeftBoundary().Logger())

	_, err = c.VectorCopy(idx(t, 3))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"code":"IndexOutOfBound"`)
	assert.Contains(t, buf.String(), "(*Compact).VectorCopy")
}
