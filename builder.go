package structgo

import (
	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/layout"
	"github.com/hupe1980/structgo/record"
)

// SchemaBuilder is an immutable fluent builder for record definitions.
// Each method returns a new builder with the field appended; the first
// error encountered sticks and is returned by Build.
type SchemaBuilder struct {
	fields []layout.Field
	err    error
}

// NewSchema creates an empty schema builder.
//
// Example:
//
//	def, err := structgo.NewSchema().
//	    Field("id", eltype.Uint32).
//	    Array("pos", eltype.Float32, 3).
//	    Build()
func NewSchema() SchemaBuilder {
	return SchemaBuilder{}
}

func (b SchemaBuilder) append(name string, t layout.FieldType, err error) SchemaBuilder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}

	fields := make([]layout.Field, len(b.fields), len(b.fields)+1)
	copy(fields, b.fields)
	b.fields = append(fields, layout.Field{Name: name, Type: t})
	return b
}

// Field appends a primitive field of the given kind.
func (b SchemaBuilder) Field(name string, kind eltype.Kind) SchemaBuilder {
	t, err := eltype.Of(kind)
	return b.append(name, t, err)
}

// Array appends a fixed-length numeric array field.
func (b SchemaBuilder) Array(name string, kind eltype.Kind, length int) SchemaBuilder {
	t, err := record.ArrayOf(kind, length)
	return b.append(name, t, err)
}

// Text appends a fixed-capacity text field.
func (b SchemaBuilder) Text(name string, byteLength int) SchemaBuilder {
	t, err := record.TextOf(byteLength)
	return b.append(name, t, err)
}

// Ring appends an embedded circular buffer field.
func (b SchemaBuilder) Ring(name string, kind eltype.Kind, capacity int) SchemaBuilder {
	t, err := record.RingOf(kind, capacity)
	return b.append(name, t, err)
}

// Build computes the layout and returns the record definition.
func (b SchemaBuilder) Build() (*record.Definition, error) {
	if b.err != nil {
		return nil, b.err
	}
	return record.NewDefinition(b.fields)
}
