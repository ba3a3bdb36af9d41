package record

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned by a fixed Array push at capacity.
	ErrFull = errors.New("record: array is at capacity")
	// ErrStrideMismatch is returned by CopyFrom when the two views do not
	// share a stride.
	ErrStrideMismatch = errors.New("record: views have different strides")
)

// ErrUnknownField indicates a field name absent from the definition.
type ErrUnknownField struct {
	Name string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("record: unknown field %q", e.Name)
}

// ErrNotPrimitive indicates a primitive-only operation invoked on an
// extended field. The message names the accessor to use instead.
type ErrNotPrimitive struct {
	Field    string
	Type     string
	Accessor string
}

func (e *ErrNotPrimitive) Error() string {
	return fmt.Sprintf("record: field %q is %s, not a primitive; use %s instead",
		e.Field, e.Type, e.Accessor)
}

// ErrKindMismatch indicates an extended accessor invoked on a field of a
// different kind.
type ErrKindMismatch struct {
	Field string
	Want  string
	Got   string
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("record: field %q is %s, expected %s", e.Field, e.Got, e.Want)
}

// ErrOutOfRange indicates a record index outside [0, Length).
type ErrOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("record: index %d out of range [0, %d)", e.Index, e.Length)
}

// ErrInvalidCapacity indicates a non-positive array capacity.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("record: invalid capacity %d (must be >= 1)", e.Capacity)
}

// ErrMisaligned indicates a view offset that violates the record alignment.
type ErrMisaligned struct {
	Offset int
	Align  int
}

func (e *ErrMisaligned) Error() string {
	return fmt.Sprintf("record: offset %d is not a multiple of record alignment %d", e.Offset, e.Align)
}

// ErrViewBounds indicates a view window extending past the buffer.
type ErrViewBounds struct {
	Offset int
	Stride int
	BufLen int
}

func (e *ErrViewBounds) Error() string {
	return fmt.Sprintf("record: view [%d, %d) exceeds buffer of %d bytes",
		e.Offset, e.Offset+e.Stride, e.BufLen)
}
