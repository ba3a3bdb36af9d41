package numarray

import (
	"iter"
	"math"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/internal/mem"
)

// Dynamic is a growable contiguous numeric array with shifting removal.
type Dynamic struct {
	typ      eltype.Type
	data     []byte
	length   int
	capacity int
}

// NewDynamic creates an empty dynamic array with the given element kind and
// initial capacity.
func NewDynamic(kind eltype.Kind, initialCapacity int) (*Dynamic, error) {
	typ, err := eltype.Of(kind)
	if err != nil {
		return nil, err
	}
	if initialCapacity < 1 {
		return nil, &ErrInvalidCapacity{Capacity: initialCapacity}
	}

	return &Dynamic{
		typ:      typ,
		data:     mem.AllocAligned(initialCapacity * typ.Size()),
		capacity: initialCapacity,
	}, nil
}

// FromSlice creates a dynamic array holding the usable input values in
// order. NaN entries are filtered out first; an input with nothing left
// fails.
func FromSlice(kind eltype.Kind, values []float64) (*Dynamic, error) {
	filtered := filterNaN(values)
	if len(filtered) == 0 {
		return nil, ErrNoValues
	}

	d, err := NewDynamic(kind, len(filtered))
	if err != nil {
		return nil, err
	}
	for _, v := range filtered {
		d.Push(v)
	}
	return d, nil
}

func filterNaN(values []float64) []float64 {
	filtered := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// Push appends v, doubling the capacity when full.
func (d *Dynamic) Push(v float64) {
	if d.length == d.capacity {
		d.resize(mem.GrowCap(d.capacity))
	}
	d.typ.Write(d.data, d.length*d.typ.Size(), v)
	d.length++
}

// Pop removes and returns the last element, then applies the shrink check.
func (d *Dynamic) Pop() (float64, error) {
	if d.length == 0 {
		return 0, ErrEmpty
	}

	d.length--
	v := d.typ.Read(d.data, d.length*d.typ.Size())
	d.maybeShrink()
	return v, nil
}

// At returns the element at index i.
func (d *Dynamic) At(i int) (float64, error) {
	if i < 0 || i >= d.length {
		return 0, &ErrOutOfRange{Index: i, Length: d.length}
	}
	return d.typ.Read(d.data, i*d.typ.Size()), nil
}

// SetAt replaces the element at index i.
func (d *Dynamic) SetAt(i int, v float64) error {
	if i < 0 || i >= d.length {
		return &ErrOutOfRange{Index: i, Length: d.length}
	}
	d.typ.Write(d.data, i*d.typ.Size(), v)
	return nil
}

// Remove deletes the element at index i, shifting subsequent elements left
// by one, then applies the shrink check.
func (d *Dynamic) Remove(i int) error {
	if i < 0 || i >= d.length {
		return &ErrOutOfRange{Index: i, Length: d.length}
	}

	size := d.typ.Size()
	copy(d.data[i*size:], d.data[(i+1)*size:d.length*size])
	d.length--
	d.maybeShrink()
	return nil
}

func (d *Dynamic) maybeShrink() {
	if mem.ShouldShrink(d.length, d.capacity) {
		d.resize(mem.ShrinkCap(d.capacity))
	}
}

// resize replaces the owned buffer with one of newCap elements. The old
// buffer stays in place until the live region has been fully copied.
func (d *Dynamic) resize(newCap int) {
	newData := mem.AllocAligned(newCap * d.typ.Size())
	copy(newData, d.data[:d.length*d.typ.Size()])
	d.data = newData
	d.capacity = newCap
}

// Len returns the number of live elements.
func (d *Dynamic) Len() int { return d.length }

// Cap returns the current capacity.
func (d *Dynamic) Cap() int { return d.capacity }

// Kind returns the element kind.
func (d *Dynamic) Kind() eltype.Kind { return d.typ.Kind() }

// ToSlice materializes the live elements as an independent copy.
func (d *Dynamic) ToSlice() []float64 {
	out := make([]float64, d.length)
	for i := range out {
		out[i] = d.typ.Read(d.data, i*d.typ.Size())
	}
	return out
}

// All iterates over (index, value) pairs in order.
func (d *Dynamic) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < d.length; i++ {
			if !yield(i, d.typ.Read(d.data, i*d.typ.Size())) {
				return
			}
		}
	}
}
