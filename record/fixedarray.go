package record

import (
	"github.com/hupe1980/structgo/eltype"
)

// FixedArray is a zero-copy accessor over a fixed-length numeric array
// field. Reads and writes go directly to the parent record's bytes.
type FixedArray struct {
	elem   eltype.Type
	buf    []byte
	off    int
	length int
}

// Len returns the fixed element count.
func (a *FixedArray) Len() int { return a.length }

// Kind returns the element kind.
func (a *FixedArray) Kind() eltype.Kind { return a.elem.Kind() }

// At returns the element at index i.
func (a *FixedArray) At(i int) (float64, error) {
	if i < 0 || i >= a.length {
		return 0, &ErrOutOfRange{Index: i, Length: a.length}
	}
	return a.elem.Read(a.buf, a.off+i*a.elem.Size()), nil
}

// SetAt writes the element at index i into the parent buffer.
func (a *FixedArray) SetAt(i int, v float64) error {
	if i < 0 || i >= a.length {
		return &ErrOutOfRange{Index: i, Length: a.length}
	}
	a.elem.Write(a.buf, a.off+i*a.elem.Size(), v)
	return nil
}

// Fill writes v into every element.
func (a *FixedArray) Fill(v float64) {
	for i := 0; i < a.length; i++ {
		a.elem.Write(a.buf, a.off+i*a.elem.Size(), v)
	}
}

// ToSlice materializes the elements as an independent copy.
func (a *FixedArray) ToSlice() []float64 {
	out := make([]float64, a.length)
	for i := range out {
		out[i] = a.elem.Read(a.buf, a.off+i*a.elem.Size())
	}
	return out
}

// CopyFromSlice writes up to Len values from src in order and returns the
// number written.
func (a *FixedArray) CopyFromSlice(src []float64) int {
	n := len(src)
	if n > a.length {
		n = a.length
	}
	for i := 0; i < n; i++ {
		a.elem.Write(a.buf, a.off+i*a.elem.Size(), src[i])
	}
	return n
}
