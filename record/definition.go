package record

import (
	"github.com/hupe1980/structgo/internal/mem"
	"github.com/hupe1980/structgo/layout"
)

// Definition owns the immutable layout of a record schema and is the
// factory for views and arrays over it.
type Definition struct {
	layout *layout.Layout
}

// NewDefinition computes the layout of the ordered schema and wraps it in a
// definition. All schema validation happens here.
func NewDefinition(fields []layout.Field) (*Definition, error) {
	l, err := layout.Compute(fields)
	if err != nil {
		return nil, err
	}
	return &Definition{layout: l}, nil
}

// Layout returns the computed layout.
func (d *Definition) Layout() *layout.Layout { return d.layout }

// Stride returns the padded byte size of one record.
func (d *Definition) Stride() int { return d.layout.Stride() }

// Align returns the record alignment.
func (d *Definition) Align() int { return d.layout.Align() }

// Field returns the placement of the named field.
func (d *Definition) Field(name string) (layout.FieldInfo, error) {
	f, ok := d.layout.Field(name)
	if !ok {
		return layout.FieldInfo{}, &ErrUnknownField{Name: name}
	}
	return f, nil
}

// Report returns the diagnostic layout report.
func (d *Definition) Report() *layout.Report { return d.layout.Report() }

// New returns a view over a fresh zeroed buffer holding one record.
func (d *Definition) New() *View {
	return &View{def: d, buf: mem.AllocAligned(d.Stride())}
}

// View binds a non-owning view to buf at the given byte offset.
// The offset must be a multiple of the record alignment and the full stride
// must fit inside the buffer; both are checked here so accessors can skip
// rechecking.
func (d *Definition) View(buf []byte, offset int) (*View, error) {
	if offset < 0 || offset%d.Align() != 0 {
		return nil, &ErrMisaligned{Offset: offset, Align: d.Align()}
	}
	if offset+d.Stride() > len(buf) {
		return nil, &ErrViewBounds{Offset: offset, Stride: d.Stride(), BufLen: len(buf)}
	}
	return &View{def: d, buf: buf, off: offset}, nil
}

// NewArray returns a fixed-capacity array of this record.
func (d *Definition) NewArray(capacity int) (*Array, error) {
	if capacity < 1 {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}
	return &Array{
		def:      d,
		data:     mem.AllocAligned(capacity * d.Stride()),
		capacity: capacity,
	}, nil
}

// NewDynamicArray returns a growable array of this record.
func (d *Definition) NewDynamicArray(initialCapacity int) (*DynamicArray, error) {
	a, err := d.NewArray(initialCapacity)
	if err != nil {
		return nil, err
	}
	return &DynamicArray{Array: *a}, nil
}
