package record

import (
	"iter"

	"github.com/hupe1980/structgo/eltype"
)

// Array is a fixed-capacity contiguous store of records. It owns one
// buffer of capacity times stride bytes and hands out views on demand.
type Array struct {
	def      *Definition
	data     []byte
	length   int
	capacity int
}

// Definition returns the record definition.
func (a *Array) Definition() *Definition { return a.def }

// Len returns the number of live records.
func (a *Array) Len() int { return a.length }

// Cap returns the record capacity.
func (a *Array) Cap() int { return a.capacity }

// Push appends a record at the current length and returns its view.
// Present primitive values are applied; a nil map leaves the slot bytes
// untouched. Fails with ErrFull at capacity.
func (a *Array) Push(values map[string]float64) (*View, error) {
	if a.length == a.capacity {
		return nil, ErrFull
	}

	v := a.viewAt(a.length)
	a.length++
	if err := v.Init(values); err != nil {
		return nil, err
	}
	return v, nil
}

// At returns a fresh view of the record at index i.
// The view aliases the array's buffer.
func (a *Array) At(i int) (*View, error) {
	if i < 0 || i >= a.length {
		return nil, &ErrOutOfRange{Index: i, Length: a.length}
	}
	return a.viewAt(i), nil
}

func (a *Array) viewAt(i int) *View {
	return &View{def: a.def, buf: a.data, off: i * a.def.Stride()}
}

// Get is the primitive-only fast path: it reads a field without
// constructing a view. Extended fields fail; go through At and the typed
// accessor instead.
func (a *Array) Get(i int, field string) (float64, error) {
	if i < 0 || i >= a.length {
		return 0, &ErrOutOfRange{Index: i, Length: a.length}
	}
	f, err := a.def.Field(field)
	if err != nil {
		return 0, err
	}
	typ, ok := f.Type.(eltype.Type)
	if !ok {
		return 0, notPrimitive(field, f.Type)
	}
	return typ.Read(a.data, i*a.def.Stride()+f.Offset), nil
}

// Set is the primitive-only fast path mirroring Get.
func (a *Array) Set(i int, field string, value float64) error {
	if i < 0 || i >= a.length {
		return &ErrOutOfRange{Index: i, Length: a.length}
	}
	f, err := a.def.Field(field)
	if err != nil {
		return err
	}
	typ, ok := f.Type.(eltype.Type)
	if !ok {
		return notPrimitive(field, f.Type)
	}
	typ.Write(a.data, i*a.def.Stride()+f.Offset, value)
	return nil
}

// Clear resets the length to zero. Memory is not zeroed; records pushed
// afterwards see the old bytes unless initialized.
func (a *Array) Clear() {
	a.length = 0
}

// All iterates over (index, view) pairs for the live records.
// Each view aliases the array's buffer.
func (a *Array) All() iter.Seq2[int, *View] {
	return func(yield func(int, *View) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.viewAt(i)) {
				return
			}
		}
	}
}

// Bytes returns the live region of the backing buffer (length times
// stride). The slice aliases the array's storage.
func (a *Array) Bytes() []byte {
	end := a.length * a.def.Stride()
	return a.data[:end:end]
}
