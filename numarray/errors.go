package numarray

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValues is returned by FromSlice constructors when no usable
	// value remains after NaN filtering.
	ErrNoValues = errors.New("numarray: no usable values in input")
	// ErrEmpty is returned by Pop on an empty array.
	ErrEmpty = errors.New("numarray: array is empty")
)

// ErrInvalidCapacity indicates a non-positive initial capacity.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("numarray: invalid initial capacity %d (must be >= 1)", e.Capacity)
}

// ErrOutOfRange indicates an index outside [0, Length).
type ErrOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("numarray: index %d out of range [0, %d)", e.Index, e.Length)
}
