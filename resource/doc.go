// Package resource implements a memory budget shared by vsmath containers.
//
// Go allocations do not fail the way the container contracts describe, so
// a Controller is what turns "storage could not be reserved" into an
// observable core.ErrAllocationFailure. Sets reserve the bytes of their
// backing buffer before growing it and release them on Close:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//	s := set.New(set.WithResourceController(rc))
//	defer s.Close()
//
// AcquireMemory never blocks; it fails fast when the limit would be exceeded.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops and
// every reservation succeeds.
package resource
