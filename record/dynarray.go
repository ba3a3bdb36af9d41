package record

import (
	"github.com/hupe1980/structgo/internal/mem"
)

// DynamicArray is a growable record array. It doubles its capacity on a
// full push and halves it once the live region drops to half the capacity,
// keeping amortized push cost O(1) and worst-case waste around 2x.
//
// A reallocation swaps the owned buffer in only after the live region has
// been copied, so a failed resize cannot corrupt the array. Views handed
// out earlier keep aliasing the old buffer; re-derive views after any
// operation that may resize.
type DynamicArray struct {
	Array
}

// Push appends a record, growing the buffer when full.
func (a *DynamicArray) Push(values map[string]float64) (*View, error) {
	if a.length == a.capacity {
		a.resize(mem.GrowCap(a.capacity))
	}
	return a.Array.Push(values)
}

// Pop removes the last record and returns it as an independent copy, or
// (nil, false) when the array is empty. The copy stays valid across later
// pushes and resizes.
func (a *DynamicArray) Pop() (*View, bool) {
	if a.length == 0 {
		return nil, false
	}

	a.length--
	stride := a.def.Stride()
	buf := mem.AllocAligned(stride)
	copy(buf, a.data[a.length*stride:(a.length+1)*stride])

	a.maybeShrink()
	return &View{def: a.def, buf: buf}, true
}

// Remove deletes the record at index i, shifting subsequent records left
// by one stride, then applies the shrink check.
func (a *DynamicArray) Remove(i int) error {
	if i < 0 || i >= a.length {
		return &ErrOutOfRange{Index: i, Length: a.length}
	}

	stride := a.def.Stride()
	copy(a.data[i*stride:], a.data[(i+1)*stride:a.length*stride])
	a.length--
	a.maybeShrink()
	return nil
}

func (a *DynamicArray) maybeShrink() {
	if mem.ShouldShrink(a.length, a.capacity) {
		a.resize(mem.ShrinkCap(a.capacity))
	}
}

func (a *DynamicArray) resize(newCap int) {
	stride := a.def.Stride()
	newData := mem.AllocAligned(newCap * stride)
	copy(newData, a.data[:a.length*stride])
	a.data = newData
	a.capacity = newCap
}
