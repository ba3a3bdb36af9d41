package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/structgo/eltype"
)

func field(name string, k eltype.Kind) Field {
	return Field{Name: name, Type: eltype.MustOf(k)}
}

func TestComputePaddedSchema(t *testing.T) {
	// {a: uint8, b: float64, c: uint8} pads b to offset 8 and the tail to
	// the 8-byte record alignment.
	l, err := Compute([]Field{
		field("a", eltype.Uint8),
		field("b", eltype.Float64),
		field("c", eltype.Uint8),
	})
	require.NoError(t, err)

	assert.Equal(t, 24, l.Stride())
	assert.Equal(t, 8, l.Align())

	a, ok := l.Field("a")
	require.True(t, ok)
	assert.Equal(t, 0, a.Offset)

	b, ok := l.Field("b")
	require.True(t, ok)
	assert.Equal(t, 8, b.Offset)

	c, ok := l.Field("c")
	require.True(t, ok)
	assert.Equal(t, 16, c.Offset)
}

func TestComputePackedSchema(t *testing.T) {
	l, err := Compute([]Field{
		field("x", eltype.Float32),
		field("y", eltype.Float32),
		field("z", eltype.Float32),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, l.Stride())
	assert.Equal(t, 4, l.Align())
}

func TestComputeInvariants(t *testing.T) {
	schemas := [][]Field{
		{field("a", eltype.Uint8)},
		{field("a", eltype.Uint8), field("b", eltype.Uint16), field("c", eltype.Uint8), field("d", eltype.Uint64)},
		{field("a", eltype.Float64), field("b", eltype.Int8)},
		{field("a", eltype.Int16), field("b", eltype.Int32), field("c", eltype.Float32), field("d", eltype.Uint8)},
	}

	for _, schema := range schemas {
		l, err := Compute(schema)
		require.NoError(t, err)

		sumSizes := 0
		prevEnd := 0
		for _, f := range l.Fields() {
			assert.GreaterOrEqual(t, f.Offset, prevEnd, "fields must not overlap")
			assert.Zero(t, f.Offset%f.Type.Align(), "field offset must satisfy its alignment")
			prevEnd = f.Offset + f.Type.Size()
			sumSizes += f.Type.Size()
		}

		assert.Zero(t, l.Stride()%l.Align(), "stride must be a multiple of record alignment")
		assert.GreaterOrEqual(t, l.Stride(), sumSizes)
	}
}

func TestComputeOrderIsPreserved(t *testing.T) {
	l, err := Compute([]Field{
		field("big", eltype.Float64),
		field("small", eltype.Uint8),
		field("mid", eltype.Uint32),
	})
	require.NoError(t, err)

	names := make([]string, 0, l.NumFields())
	for _, f := range l.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"big", "small", "mid"}, names)
}

func TestComputeValidation(t *testing.T) {
	_, err := Compute(nil)
	assert.ErrorIs(t, err, ErrEmptySchema)

	_, err = Compute([]Field{field("a", eltype.Uint8), field("a", eltype.Uint32)})
	var dup *ErrDuplicateField
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)

	_, err = Compute([]Field{{Name: "", Type: eltype.MustOf(eltype.Uint8)}})
	var invalid *ErrInvalidField
	assert.ErrorAs(t, err, &invalid)

	_, err = Compute([]Field{{Name: "a", Type: nil}})
	assert.ErrorAs(t, err, &invalid)
}

func TestFieldLookupMiss(t *testing.T) {
	l, err := Compute([]Field{field("a", eltype.Uint8)})
	require.NoError(t, err)

	_, ok := l.Field("missing")
	assert.False(t, ok)
}

func TestReport(t *testing.T) {
	l, err := Compute([]Field{
		field("a", eltype.Uint8),
		field("b", eltype.Float64),
		field("c", eltype.Uint8),
	})
	require.NoError(t, err)

	r := l.Report()
	require.Len(t, r.Fields, 3)

	assert.Equal(t, 24, r.Stride)
	assert.Equal(t, 10, r.Used)
	assert.Equal(t, 14, r.Wasted)
	assert.InDelta(t, 41.66, r.Efficiency, 0.1)

	assert.Equal(t, 0, r.Fields[0].Padding)
	assert.Equal(t, 7, r.Fields[1].Padding, "gap before b")
	assert.Equal(t, 0, r.Fields[2].Padding)

	out := r.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "float64")
	assert.Contains(t, out, "stride=24")
}

func TestAlignTo(t *testing.T) {
	assert.Equal(t, 0, AlignTo(0, 8))
	assert.Equal(t, 8, AlignTo(1, 8))
	assert.Equal(t, 8, AlignTo(8, 8))
	assert.Equal(t, 12, AlignTo(9, 4))
	assert.Equal(t, 5, AlignTo(5, 1))
}
