package vsmath

import "github.com/hupe1980/vsmath/core"

// Code is the result code of an operation. See CodeOf.
type Code = core.Code

const (
	Success               = core.Success
	InvalidArgument       = core.InvalidArgument
	MismatchingDimensions = core.MismatchingDimensions
	IndexOutOfBound       = core.IndexOutOfBound
	NullPointer           = core.NullPointer
	NotANumber            = core.NotANumber
	InfinityOverflow      = core.InfinityOverflow
	AllocationFailure     = core.AllocationFailure
	VectorNotFound        = core.VectorNotFound
	VectorAlreadyExists   = core.VectorAlreadyExists
	SourceEmpty           = core.SourceEmpty
	MemoryAliasing        = core.MemoryAliasing
)

// Sentinel errors. Every error returned by vsmath matches exactly one of
// them via errors.Is.
var (
	ErrInvalidArgument       = core.ErrInvalidArgument
	ErrMismatchingDimensions = core.ErrMismatchingDimensions
	ErrIndexOutOfBound       = core.ErrIndexOutOfBound
	ErrNullPointer           = core.ErrNullPointer
	ErrNotANumber            = core.ErrNotANumber
	ErrInfinityOverflow      = core.ErrInfinityOverflow
	ErrAllocationFailure     = core.ErrAllocationFailure
	ErrVectorNotFound        = core.ErrVectorNotFound
	ErrVectorAlreadyExists   = core.ErrVectorAlreadyExists
	ErrSourceEmpty           = core.ErrSourceEmpty
	ErrMemoryAliasing        = core.ErrMemoryAliasing
)

// CodeOf maps err back to its result code; nil is Success.
func CodeOf(err error) Code {
	return core.CodeOf(err)
}
