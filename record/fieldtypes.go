package record

import (
	"fmt"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/layout"
)

// ErrInvalidFieldSpec indicates an unusable extended field parameter.
type ErrInvalidFieldSpec struct {
	What  string
	Value int
}

func (e *ErrInvalidFieldSpec) Error() string {
	return fmt.Sprintf("record: invalid %s %d (must be >= 1)", e.What, e.Value)
}

// ArrayType describes a fixed-length numeric array field.
// Its alignment is the element size, so the first element is aligned and
// the rest follow contiguously.
type ArrayType struct {
	elem   eltype.Type
	length int
}

// ArrayOf returns the descriptor of a fixed numeric array field.
func ArrayOf(kind eltype.Kind, length int) (ArrayType, error) {
	elem, err := eltype.Of(kind)
	if err != nil {
		return ArrayType{}, err
	}
	if length < 1 {
		return ArrayType{}, &ErrInvalidFieldSpec{What: "array length", Value: length}
	}
	return ArrayType{elem: elem, length: length}, nil
}

// Size returns elementSize times length.
func (t ArrayType) Size() int { return t.elem.Size() * t.length }

// Align returns the element alignment.
func (t ArrayType) Align() int { return t.elem.Align() }

// Elem returns the element type.
func (t ArrayType) Elem() eltype.Type { return t.elem }

// Len returns the fixed element count.
func (t ArrayType) Len() int { return t.length }

func (t ArrayType) String() string {
	return fmt.Sprintf("[%d]%s", t.length, t.elem)
}

// TextType describes a fixed-capacity text field stored as raw bytes with
// byte alignment 1. Shorter values are zero-padded; longer values truncate.
type TextType struct {
	size int
}

// TextOf returns the descriptor of a fixed-capacity text field.
func TextOf(byteLength int) (TextType, error) {
	if byteLength < 1 {
		return TextType{}, &ErrInvalidFieldSpec{What: "text size", Value: byteLength}
	}
	return TextType{size: byteLength}, nil
}

// Size returns the fixed byte length.
func (t TextType) Size() int { return t.size }

// Align returns 1; text has no alignment requirement.
func (t TextType) Align() int { return 1 }

func (t TextType) String() string {
	return fmt.Sprintf("text[%d]", t.size)
}

// ringHeaderSize is the embedded ring header: head, tail, count uint32
// cursors.
const ringHeaderSize = 12

// RingType describes an embedded circular buffer field: the cursor header,
// rounded up to the payload alignment, followed by capacity elements.
type RingType struct {
	elem       eltype.Type
	capacity   int
	payloadOff int
}

// RingOf returns the descriptor of an embedded circular buffer field.
func RingOf(kind eltype.Kind, capacity int) (RingType, error) {
	elem, err := eltype.Of(kind)
	if err != nil {
		return RingType{}, err
	}
	if capacity < 1 {
		return RingType{}, &ErrInvalidFieldSpec{What: "ring capacity", Value: capacity}
	}
	return RingType{
		elem:       elem,
		capacity:   capacity,
		payloadOff: layout.AlignTo(ringHeaderSize, elem.Align()),
	}, nil
}

// Size returns the padded header size plus the payload size.
func (t RingType) Size() int { return t.payloadOff + t.capacity*t.elem.Size() }

// Align returns the field alignment: the cursor header needs 4, the
// payload needs the element alignment.
func (t RingType) Align() int {
	if a := t.elem.Align(); a > 4 {
		return a
	}
	return 4
}

// Elem returns the element type.
func (t RingType) Elem() eltype.Type { return t.elem }

// Cap returns the fixed capacity.
func (t RingType) Cap() int { return t.capacity }

func (t RingType) String() string {
	return fmt.Sprintf("ring[%d]%s", t.capacity, t.elem)
}
