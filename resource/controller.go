package resource

import (
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/vsmath/core"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the limit.
// It matches core.ErrAllocationFailure via errors.Is.
var ErrMemoryLimitExceeded = fmt.Errorf("%w: memory limit exceeded", core.ErrAllocationFailure)

// Float64Size is the number of bytes reserved per stored coordinate.
const Float64Size = 8

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for reserved memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64
}

// Controller tracks and optionally limits the memory held by containers.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg: cfg,
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return ErrMemoryLimitExceeded
	}

	c.memUsed += bytes
	return nil
}

// AcquireFloats reserves room for n float64 coordinates.
func (c *Controller) AcquireFloats(n int) error {
	return c.AcquireMemory(int64(n) * Float64Size)
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed -= bytes
}

// ReleaseFloats releases room for n float64 coordinates.
func (c *Controller) ReleaseFloats(n int) {
	c.ReleaseMemory(int64(n) * Float64Size)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}
