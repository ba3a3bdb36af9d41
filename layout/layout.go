package layout

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrEmptySchema is returned when a schema contains no fields.
	ErrEmptySchema = errors.New("layout: schema has no fields")
)

// ErrDuplicateField indicates two schema fields sharing one name.
type ErrDuplicateField struct {
	Name string
}

func (e *ErrDuplicateField) Error() string {
	return fmt.Sprintf("layout: duplicate field name %q", e.Name)
}

// ErrInvalidField indicates a field with an unusable name or type descriptor.
type ErrInvalidField struct {
	Name   string
	Reason string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("layout: invalid field %q: %s", e.Name, e.Reason)
}

// FieldType describes the storage shape of a field: its byte size and the
// power-of-two boundary its offset must be a multiple of.
//
// eltype.Type satisfies it for primitives; the record package contributes
// extended descriptors (fixed arrays, fixed text, embedded ring buffers).
type FieldType interface {
	Size() int
	Align() int
	String() string
}

// Field is one ordered schema entry.
type Field struct {
	Name string
	Type FieldType
}

// FieldInfo is a computed field placement within a record.
type FieldInfo struct {
	Name   string
	Type   FieldType
	Offset int
}

// Layout is the computed placement of an ordered field schema.
// It is computed once and immutable thereafter.
type Layout struct {
	fields []FieldInfo
	byName map[string]int
	stride int
	align  int
}

// Compute walks the schema in declaration order and returns its layout.
//
// Duplicate field names fail at construction time rather than silently
// resolving to the last occurrence.
func Compute(fields []Field) (*Layout, error) {
	if len(fields) == 0 {
		return nil, ErrEmptySchema
	}

	l := &Layout{
		fields: make([]FieldInfo, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
		align:  1,
	}

	cursor := 0
	for _, f := range fields {
		if f.Name == "" {
			return nil, &ErrInvalidField{Name: f.Name, Reason: "empty name"}
		}
		if f.Type == nil {
			return nil, &ErrInvalidField{Name: f.Name, Reason: "nil type"}
		}
		size, align := f.Type.Size(), f.Type.Align()
		if size < 1 {
			return nil, &ErrInvalidField{Name: f.Name, Reason: fmt.Sprintf("non-positive size %d", size)}
		}
		if align < 1 || bits.OnesCount(uint(align)) != 1 {
			return nil, &ErrInvalidField{Name: f.Name, Reason: fmt.Sprintf("alignment %d is not a power of two", align)}
		}
		if _, exists := l.byName[f.Name]; exists {
			return nil, &ErrDuplicateField{Name: f.Name}
		}

		cursor = AlignTo(cursor, align)
		l.byName[f.Name] = len(l.fields)
		l.fields = append(l.fields, FieldInfo{Name: f.Name, Type: f.Type, Offset: cursor})
		cursor += size

		if align > l.align {
			l.align = align
		}
	}

	// Pad the tail so consecutive array elements stay aligned.
	l.stride = AlignTo(cursor, l.align)

	return l, nil
}

// AlignTo rounds n up to the next multiple of align.
// align must be a power of two.
func AlignTo(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Stride returns the padded byte size of one record.
func (l *Layout) Stride() int { return l.stride }

// Align returns the record alignment (the maximum field alignment).
func (l *Layout) Align() int { return l.align }

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.fields) }

// Fields returns the computed placements in declaration order.
// The returned slice is shared; callers must not modify it.
func (l *Layout) Fields() []FieldInfo { return l.fields }

// Field returns the placement of the named field.
func (l *Layout) Field(name string) (FieldInfo, bool) {
	i, ok := l.byName[name]
	if !ok {
		return FieldInfo{}, false
	}
	return l.fields[i], true
}
