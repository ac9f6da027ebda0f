package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vsmath/core"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})
	assert.Equal(t, int64(100), c.MemoryLimit())

	steps := []struct {
		name    string
		acquire int64
		release int64
		fails   bool
		usage   int64
	}{
		{name: "first", acquire: 50, usage: 50},
		{name: "second", acquire: 40, usage: 90},
		{name: "over limit", acquire: 20, fails: true, usage: 90},
		{name: "release", release: 50, usage: 40},
		{name: "fits again", acquire: 20, usage: 60},
		{name: "exactly full", acquire: 40, usage: 100},
	}

	for _, st := range steps {
		c.ReleaseMemory(st.release)
		err := c.AcquireMemory(st.acquire)
		if st.fails {
			assert.ErrorIs(t, err, ErrMemoryLimitExceeded, st.name)
			assert.Equal(t, core.AllocationFailure, core.CodeOf(err), st.name)
		} else {
			require.NoError(t, err, st.name)
		}
		assert.Equal(t, st.usage, c.MemoryUsage(), st.name)
	}
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Floats(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10 * Float64Size})

	require.NoError(t, c.AcquireFloats(8))
	assert.Equal(t, int64(8*Float64Size), c.MemoryUsage())

	assert.ErrorIs(t, c.AcquireFloats(3), core.ErrAllocationFailure)

	c.ReleaseFloats(8)
	assert.Equal(t, int64(0), c.MemoryUsage())
	require.NoError(t, c.AcquireFloats(10))
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireMemory(1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}

func TestController_IgnoresNonPositive(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})

	require.NoError(t, c.AcquireMemory(0))
	require.NoError(t, c.AcquireMemory(-5))
	c.ReleaseMemory(-5)
	assert.Equal(t, int64(0), c.MemoryUsage())
}
