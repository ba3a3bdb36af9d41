package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/structgo/eltype"
)

func TestLoadArray(t *testing.T) {
	def := mustDef(t, prim("id", eltype.Uint32), prim("value", eltype.Float64))

	src, err := def.NewArray(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := src.Push(map[string]float64{"id": float64(i + 1), "value": float64(i) * 0.5})
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "records.bin")
	require.NoError(t, os.WriteFile(path, src.Bytes(), 0o600))

	loaded, closer, err := LoadArray(def, path)
	require.NoError(t, err)
	defer closer.Close()

	require.Equal(t, 3, loaded.Len())
	assert.Equal(t, 3, loaded.Cap())

	for i := 0; i < 3; i++ {
		id, err := loaded.Get(i, "id")
		require.NoError(t, err)
		assert.Equal(t, float64(i+1), id)

		v, err := loaded.At(i)
		require.NoError(t, err)
		value, err := v.Get("value")
		require.NoError(t, err)
		assert.Equal(t, float64(i)*0.5, value)
	}
}

func TestLoadArrayBadSize(t *testing.T) {
	def := mustDef(t, prim("id", eltype.Uint64)) // stride 8

	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o600))

	_, _, err := LoadArray(def, path)
	var bad *ErrBadFileSize
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 12, bad.Size)
	assert.Equal(t, 8, bad.Stride)
}

func TestLoadArrayEmptyFile(t *testing.T) {
	def := mustDef(t, prim("id", eltype.Uint64))

	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, _, err := LoadArray(def, path)
	var bad *ErrBadFileSize
	assert.ErrorAs(t, err, &bad)
}

func TestLoadArrayMissingFile(t *testing.T) {
	def := mustDef(t, prim("id", eltype.Uint64))
	_, _, err := LoadArray(def, filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
