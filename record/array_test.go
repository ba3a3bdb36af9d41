package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/structgo/eltype"
)

func TestArrayPushAndAt(t *testing.T) {
	def := mustDef(t, prim("id", eltype.Uint32), prim("score", eltype.Float64))
	a, err := def.NewArray(2)
	require.NoError(t, err)

	_, err = a.Push(map[string]float64{"id": 1, "score": 0.5})
	require.NoError(t, err)
	_, err = a.Push(map[string]float64{"id": 2, "score": 1.5})
	require.NoError(t, err)

	assert.Equal(t, 2, a.Len())

	_, err = a.Push(nil)
	assert.ErrorIs(t, err, ErrFull)

	v, err := a.At(1)
	require.NoError(t, err)
	id, _ := v.Get("id")
	assert.Equal(t, float64(2), id)

	var oor *ErrOutOfRange
	_, err = a.At(2)
	require.ErrorAs(t, err, &oor)
	_, err = a.At(-1)
	assert.ErrorAs(t, err, &oor)
}

func TestArrayCapacityValidation(t *testing.T) {
	def := mustDef(t, prim("id", eltype.Uint32))

	var invalid *ErrInvalidCapacity
	_, err := def.NewArray(0)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Capacity)
}

func TestArrayFastPaths(t *testing.T) {
	pos, err := ArrayOf(eltype.Float32, 2)
	require.NoError(t, err)
	def := mustDef(t, prim("id", eltype.Uint32), fieldOf("pos", pos))

	a, err := def.NewArray(4)
	require.NoError(t, err)
	_, err = a.Push(map[string]float64{"id": 10})
	require.NoError(t, err)

	got, err := a.Get(0, "id")
	require.NoError(t, err)
	assert.Equal(t, float64(10), got)

	require.NoError(t, a.Set(0, "id", 11))
	got, _ = a.Get(0, "id")
	assert.Equal(t, float64(11), got)

	// The fast path refuses extended fields.
	var np *ErrNotPrimitive
	_, err = a.Get(0, "pos")
	require.ErrorAs(t, err, &np)
	assert.ErrorAs(t, a.Set(0, "pos", 1), &np)

	var oor *ErrOutOfRange
	_, err = a.Get(3, "id")
	assert.ErrorAs(t, err, &oor)
}

func TestArrayViewsShareStorage(t *testing.T) {
	def := mustDef(t, prim("n", eltype.Int32))
	a, _ := def.NewArray(1)
	_, err := a.Push(map[string]float64{"n": 1})
	require.NoError(t, err)

	v1, _ := a.At(0)
	v2, _ := a.At(0)

	require.NoError(t, v1.Set("n", 99))
	got, _ := v2.Get("n")
	assert.Equal(t, float64(99), got, "views over one slot must agree")
}

func TestArrayClearKeepsMemory(t *testing.T) {
	def := mustDef(t, prim("n", eltype.Int32))
	a, _ := def.NewArray(2)
	_, err := a.Push(map[string]float64{"n": 7})
	require.NoError(t, err)

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 2, a.Cap())

	// Push without init after Clear exposes the old slot bytes.
	v, err := a.Push(nil)
	require.NoError(t, err)
	got, _ := v.Get("n")
	assert.Equal(t, float64(7), got)
}

func TestArrayAll(t *testing.T) {
	def := mustDef(t, prim("n", eltype.Int32))
	a, _ := def.NewArray(4)
	for i := 0; i < 3; i++ {
		_, err := a.Push(map[string]float64{"n": float64(i * 10)})
		require.NoError(t, err)
	}

	seen := map[int]float64{}
	for i, v := range a.All() {
		n, err := v.Get("n")
		require.NoError(t, err)
		seen[i] = n
	}
	assert.Equal(t, map[int]float64{0: 0, 1: 10, 2: 20}, seen)
}

func TestArrayBytesCoversLiveRegion(t *testing.T) {
	def := mustDef(t, prim("n", eltype.Uint64))
	a, _ := def.NewArray(4)
	_, err := a.Push(map[string]float64{"n": 1})
	require.NoError(t, err)
	_, err = a.Push(map[string]float64{"n": 2})
	require.NoError(t, err)

	assert.Len(t, a.Bytes(), 2*def.Stride())
}
