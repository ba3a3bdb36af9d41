package numarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/snapshot"
)

func TestNewDynamicValidation(t *testing.T) {
	_, err := NewDynamic(eltype.Kind(99), 2)
	var unknown *eltype.ErrUnknownKind
	assert.ErrorAs(t, err, &unknown)

	_, err = NewDynamic(eltype.Int32, 0)
	var invalid *ErrInvalidCapacity
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Capacity)
}

func TestDynamicGrowAndShrink(t *testing.T) {
	d, err := NewDynamic(eltype.Int32, 2)
	require.NoError(t, err)

	d.Push(1)
	d.Push(2)
	d.Push(3) // triggers growth

	assert.Equal(t, 4, d.Cap())
	assert.Equal(t, 3, d.Len())

	// Two removals walk the capacity back down the halving schedule.
	require.NoError(t, d.Remove(0)) // len 2 <= 4/2 -> cap 2
	assert.Equal(t, 2, d.Cap())
	require.NoError(t, d.Remove(0)) // len 1 <= 2/2 -> cap 1
	assert.Equal(t, 1, d.Cap())

	v, err := d.At(0)
	require.NoError(t, err)
	assert.Equal(t, float64(3), v)
}

func TestDynamicGrowthSchedule(t *testing.T) {
	const initial = 4
	d, err := NewDynamic(eltype.Float64, initial)
	require.NoError(t, err)

	for n := 1; n <= 100; n++ {
		d.Push(float64(n))

		// Capacity is the smallest initial*2^k holding n elements.
		want := initial
		for want < n {
			want *= 2
		}
		require.Equal(t, want, d.Cap(), "after %d pushes", n)
	}

	// Data survives all reallocations.
	for i := 0; i < 100; i++ {
		v, err := d.At(i)
		require.NoError(t, err)
		require.Equal(t, float64(i+1), v)
	}
}

func TestDynamicRemoveShifts(t *testing.T) {
	d, _ := NewDynamic(eltype.Int32, 8)
	for _, v := range []float64{10, 20, 30, 40, 50} {
		d.Push(v)
	}

	require.NoError(t, d.Remove(1))

	assert.Equal(t, []float64{10, 30, 40, 50}, d.ToSlice())
}

func TestDynamicPop(t *testing.T) {
	d, _ := NewDynamic(eltype.Int32, 2)
	d.Push(1)
	d.Push(2)

	v, err := d.Pop()
	require.NoError(t, err)
	assert.Equal(t, float64(2), v)
	assert.Equal(t, 1, d.Len())

	_, err = d.Pop()
	require.NoError(t, err)
	_, err = d.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDynamicRangeErrors(t *testing.T) {
	d, _ := NewDynamic(eltype.Int32, 2)
	d.Push(1)

	var oor *ErrOutOfRange
	_, err := d.At(1)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 1, oor.Index)
	assert.Equal(t, 1, oor.Length)

	assert.ErrorAs(t, d.SetAt(-1, 0), &oor)
	assert.ErrorAs(t, d.Remove(5), &oor)
}

func TestDynamicFromSlice(t *testing.T) {
	d, err := FromSlice(eltype.Float64, []float64{1, math.NaN(), 2, math.NaN(), 3})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []float64{1, 2, 3}, d.ToSlice())

	_, err = FromSlice(eltype.Float64, []float64{math.NaN()})
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestDynamicAll(t *testing.T) {
	d, _ := NewDynamic(eltype.Uint16, 4)
	d.Push(5)
	d.Push(6)

	got := map[int]float64{}
	for i, v := range d.All() {
		got[i] = v
	}
	assert.Equal(t, map[int]float64{0: 5, 1: 6}, got)
}

func TestDynamicSnapshotRoundTrip(t *testing.T) {
	d, _ := NewDynamic(eltype.Float64, 2)
	for i := 0; i < 10; i++ {
		d.Push(float64(i) * 1.5)
	}

	for _, codec := range []snapshot.Codec{snapshot.CodecNone, snapshot.CodecLZ4, snapshot.CodecZSTD} {
		blob, err := d.Snapshot(codec)
		require.NoError(t, err)

		restored, err := RestoreDynamic(blob)
		require.NoError(t, err)

		assert.Equal(t, d.Len(), restored.Len())
		assert.Equal(t, eltype.Float64, restored.Kind())
		assert.Equal(t, d.ToSlice(), restored.ToSlice())

		// Restored arrays keep growing normally.
		restored.Push(99)
		assert.Equal(t, 11, restored.Len())
	}
}

func TestDynamicSnapshotRejectsOversizedRegion(t *testing.T) {
	// A live region past the 4 GiB header limit must fail before the
	// buffer is touched.
	d := &Dynamic{
		typ:      eltype.MustOf(eltype.Float64),
		length:   math.MaxInt32,
		capacity: math.MaxInt32,
	}

	_, err := d.Snapshot(snapshot.CodecNone)
	assert.ErrorIs(t, err, snapshot.ErrTooLarge)
}

func TestRestoreDynamicValidation(t *testing.T) {
	_, err := RestoreDynamic([]byte{1})
	assert.ErrorIs(t, err, snapshot.ErrShortBlob)

	d, _ := NewDynamic(eltype.Int32, 2)
	d.Push(7)
	blob, err := d.Snapshot(snapshot.CodecNone)
	require.NoError(t, err)

	blob[0] = 99 // unknown kind tag
	_, err = RestoreDynamic(blob)
	var unknown *eltype.ErrUnknownKind
	assert.ErrorAs(t, err, &unknown)
}
