package record

import (
	"github.com/hupe1980/structgo/eltype"
)

// View is a non-owning window over one record: a (buffer, offset,
// definition) triple. It holds no copy of the data; every accessor reads or
// writes the backing buffer directly. A view into a growable container is
// invalidated when that container reallocates.
type View struct {
	def *Definition
	buf []byte
	off int
}

// Definition returns the view's record definition.
func (v *View) Definition() *Definition { return v.def }

// Offset returns the byte offset of the record within the backing buffer.
func (v *View) Offset() int { return v.off }

// Bytes returns the record's stride window. The slice aliases the backing
// buffer; mutations through it are visible to every other view of the
// region.
func (v *View) Bytes() []byte {
	end := v.off + v.def.Stride()
	return v.buf[v.off:end:end]
}

// Get reads a primitive field. Extended fields fail; use the accessor the
// error names (FixedArray, Text, or Ring).
func (v *View) Get(name string) (float64, error) {
	f, err := v.def.Field(name)
	if err != nil {
		return 0, err
	}

	typ, ok := f.Type.(eltype.Type)
	if !ok {
		return 0, notPrimitive(name, f.Type)
	}
	return typ.Read(v.buf, v.off+f.Offset), nil
}

// Set writes a primitive field. Extended fields fail; mutate them through
// their accessors instead.
func (v *View) Set(name string, value float64) error {
	f, err := v.def.Field(name)
	if err != nil {
		return err
	}

	typ, ok := f.Type.(eltype.Type)
	if !ok {
		return notPrimitive(name, f.Type)
	}
	typ.Write(v.buf, v.off+f.Offset, value)
	return nil
}

func notPrimitive(name string, t interface{ String() string }) *ErrNotPrimitive {
	accessor := "an extended accessor"
	switch t.(type) {
	case ArrayType:
		accessor = "FixedArray"
	case TextType:
		accessor = "Text"
	case RingType:
		accessor = "Ring"
	}
	return &ErrNotPrimitive{Field: name, Type: t.String(), Accessor: accessor}
}

// Init applies Set for every primitive field present in values. Absent
// fields keep their current bytes; keys that do not name a primitive field
// are ignored.
func (v *View) Init(values map[string]float64) error {
	if len(values) == 0 {
		return nil
	}

	for _, f := range v.def.Layout().Fields() {
		typ, ok := f.Type.(eltype.Type)
		if !ok {
			continue
		}
		if val, present := values[f.Name]; present {
			typ.Write(v.buf, v.off+f.Offset, val)
		}
	}
	return nil
}

// CopyFrom copies the other view's full stride into this view's region in
// one operation, covering every field including extended payloads. The two
// definitions must share a stride.
func (v *View) CopyFrom(other *View) error {
	if v.def.Stride() != other.def.Stride() {
		return ErrStrideMismatch
	}
	copy(v.Bytes(), other.Bytes())
	return nil
}

// FixedArray returns the zero-copy accessor of a fixed numeric array field.
func (v *View) FixedArray(name string) (*FixedArray, error) {
	f, err := v.def.Field(name)
	if err != nil {
		return nil, err
	}
	t, ok := f.Type.(ArrayType)
	if !ok {
		return nil, &ErrKindMismatch{Field: name, Want: "a fixed array", Got: f.Type.String()}
	}
	return &FixedArray{elem: t.elem, buf: v.buf, off: v.off + f.Offset, length: t.length}, nil
}

// Text returns the zero-copy accessor of a fixed-capacity text field.
func (v *View) Text(name string) (*Text, error) {
	f, err := v.def.Field(name)
	if err != nil {
		return nil, err
	}
	t, ok := f.Type.(TextType)
	if !ok {
		return nil, &ErrKindMismatch{Field: name, Want: "a text field", Got: f.Type.String()}
	}
	return &Text{buf: v.buf, off: v.off + f.Offset, size: t.size}, nil
}

// Ring returns the zero-copy accessor of an embedded circular buffer field.
func (v *View) Ring(name string) (*Ring, error) {
	f, err := v.def.Field(name)
	if err != nil {
		return nil, err
	}
	t, ok := f.Type.(RingType)
	if !ok {
		return nil, &ErrKindMismatch{Field: name, Want: "an embedded ring", Got: f.Type.String()}
	}
	return &Ring{
		elem:       t.elem,
		buf:        v.buf,
		off:        v.off + f.Offset,
		capacity:   t.capacity,
		payloadOff: t.payloadOff,
	}, nil
}
