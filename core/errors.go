package core

import (
	"errors"
	"fmt"
)

// Code is the closed set of result codes reported by vsmath operations.
type Code int

const (
	Success Code = iota
	InvalidArgument
	MismatchingDimensions
	IndexOutOfBound
	NullPointer
	NotANumber
	InfinityOverflow
	AllocationFailure
	VectorNotFound
	VectorAlreadyExists
	SourceEmpty
	MemoryAliasing
)

func (c Code) String() string {
	switch c {
	case Success:
		return "Success"
	case InvalidArgument:
		return "InvalidArgument"
	case MismatchingDimensions:
		return "MismatchingDimensions"
	case IndexOutOfBound:
		return "IndexOutOfBound"
	case NullPointer:
		return "NullPointer"
	case NotANumber:
		return "NotANumber"
	case InfinityOverflow:
		return "InfinityOverflow"
	case AllocationFailure:
		return "AllocationFailure"
	case VectorNotFound:
		return "VectorNotFound"
	case VectorAlreadyExists:
		return "VectorAlreadyExists"
	case SourceEmpty:
		return "SourceEmpty"
	case MemoryAliasing:
		return "MemoryAliasing"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

var (
	// ErrInvalidArgument is returned when an argument is outside its domain
	// (zero dimension, negative tolerance, unknown norm kind, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMismatchingDimensions is returned when two operands have different dimensions.
	ErrMismatchingDimensions = errors.New("mismatching dimensions")

	// ErrIndexOutOfBound is returned for out-of-range indices and exhausted iterators.
	ErrIndexOutOfBound = errors.New("index out of bound")

	// ErrNullPointer is returned when a required operand is nil.
	ErrNullPointer = errors.New("nil operand")

	// ErrNotANumber is returned when a value is NaN or a write would produce NaN.
	ErrNotANumber = errors.New("not a number")

	// ErrInfinityOverflow is returned when a value is infinite or a write would overflow.
	ErrInfinityOverflow = errors.New("infinity overflow")

	// ErrAllocationFailure is returned when storage cannot be reserved.
	// It is never downgraded to another code.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrVectorNotFound is returned when no stored vector matches a pattern.
	ErrVectorNotFound = errors.New("vector not found")

	// ErrVectorAlreadyExists is returned when an inserted vector duplicates a stored one.
	ErrVectorAlreadyExists = errors.New("vector already exists")

	// ErrSourceEmpty is returned when an operation needs at least one element.
	ErrSourceEmpty = errors.New("source is empty")

	// ErrMemoryAliasing is returned when a copy's source and destination share storage.
	ErrMemoryAliasing = errors.New("memory aliasing")
)

var sentinels = [...]struct {
	code Code
	err  error
}{
	{InvalidArgument, ErrInvalidArgument},
	{MismatchingDimensions, ErrMismatchingDimensions},
	{IndexOutOfBound, ErrIndexOutOfBound},
	{NullPointer, ErrNullPointer},
	{NotANumber, ErrNotANumber},
	{InfinityOverflow, ErrInfinityOverflow},
	{AllocationFailure, ErrAllocationFailure},
	{VectorNotFound, ErrVectorNotFound},
	{VectorAlreadyExists, ErrVectorAlreadyExists},
	{SourceEmpty, ErrSourceEmpty},
	{MemoryAliasing, ErrMemoryAliasing},
}

// Err returns the sentinel error for c, or nil for Success.
func (c Code) Err() error {
	for _, s := range sentinels {
		if s.code == c {
			return s.err
		}
	}
	return nil
}

// CodeOf maps err back to its result code.
// A nil error is Success; errors outside the taxonomy report InvalidArgument.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return InvalidArgument
}

// DimensionMismatchError indicates that an operand's dimension differs from the expected one.
//
// It matches ErrMismatchingDimensions via errors.Is.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %d, got %d", ErrMismatchingDimensions, e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrMismatchingDimensions }

// IndexError indicates an index outside [0, Len).
//
// It matches ErrIndexOutOfBound via errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, length %d", ErrIndexOutOfBound, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBound }

// Mismatch returns a *DimensionMismatchError.
func Mismatch(expected, actual int) error {
	return &DimensionMismatchError{Expected: expected, Actual: actual}
}

// OutOfBound returns an *IndexError.
func OutOfBound(index, length int) error {
	return &IndexError{Index: index, Len: length}
}

// Errorf wraps a sentinel with additional context.
func Errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
