package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/snapshot"
)

func TestDynamicArraySnapshotRoundTrip(t *testing.T) {
	tag, err := TextOf(8)
	require.NoError(t, err)
	def := mustDef(t, prim("id", eltype.Uint32), fieldOf("tag", tag))

	a, err := def.NewDynamicArray(2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		v, err := a.Push(map[string]float64{"id": float64(i)})
		require.NoError(t, err)
		txt, err := v.Text("tag")
		require.NoError(t, err)
		txt.Set("rec")
	}

	for _, codec := range []snapshot.Codec{snapshot.CodecNone, snapshot.CodecLZ4, snapshot.CodecZSTD} {
		t.Run(codec.String(), func(t *testing.T) {
			blob, err := a.Snapshot(codec)
			require.NoError(t, err)

			restored, err := RestoreDynamicArray(def, blob)
			require.NoError(t, err)

			require.Equal(t, a.Len(), restored.Len())
			assert.Equal(t, a.Bytes(), restored.Bytes())

			id, err := restored.Get(3, "id")
			require.NoError(t, err)
			assert.Equal(t, float64(3), id)

			// A restored array grows independently of the original.
			_, err = restored.Push(map[string]float64{"id": 100})
			require.NoError(t, err)
			assert.Equal(t, 5, a.Len())
		})
	}
}

func TestRestoreDynamicArrayStrideMismatch(t *testing.T) {
	defA := mustDef(t, prim("a", eltype.Uint8))
	defB := mustDef(t, prim("b", eltype.Float64))

	a, _ := defA.NewDynamicArray(1)
	_, err := a.Push(map[string]float64{"a": 1})
	require.NoError(t, err)

	blob, err := a.Snapshot(snapshot.CodecNone)
	require.NoError(t, err)

	_, err = RestoreDynamicArray(defB, blob)
	var mismatch *ErrSnapshotStride
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, defA.Stride(), mismatch.Blob)
	assert.Equal(t, defB.Stride(), mismatch.Definition)
}

func TestRestoreDynamicArrayShortBlob(t *testing.T) {
	def := mustDef(t, prim("a", eltype.Uint8))
	_, err := RestoreDynamicArray(def, []byte{1, 2, 3})
	assert.ErrorIs(t, err, snapshot.ErrShortBlob)
}

func TestSnapshotRejectsOversizedRegion(t *testing.T) {
	def := mustDef(t, prim("value", eltype.Float64))

	// A live region past the 4 GiB header limit must fail before the
	// buffer is touched.
	a := &DynamicArray{Array: Array{
		def:      def,
		length:   math.MaxInt32,
		capacity: math.MaxInt32,
	}}

	_, err := a.Snapshot(snapshot.CodecNone)
	assert.ErrorIs(t, err, snapshot.ErrTooLarge)
}

func TestSnapshotEmptyArray(t *testing.T) {
	def := mustDef(t, prim("a", eltype.Uint8))
	a, _ := def.NewDynamicArray(4)

	blob, err := a.Snapshot(snapshot.CodecLZ4)
	require.NoError(t, err)

	restored, err := RestoreDynamicArray(def, blob)
	require.NoError(t, err)
	assert.Equal(t, 0, restored.Len())
	assert.GreaterOrEqual(t, restored.Cap(), 1)
}
