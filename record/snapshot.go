package record

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/structgo/internal/mem"
	"github.com/hupe1980/structgo/snapshot"
)

// Snapshot envelope: [stride u32][length u32] followed by a snapshot blob
// of the live region.
const snapshotHeaderSize = 4 + 4

// ErrSnapshotStride indicates a snapshot taken under a different layout.
type ErrSnapshotStride struct {
	Blob       int
	Definition int
}

func (e *ErrSnapshotStride) Error() string {
	return fmt.Sprintf("record: snapshot stride %d does not match definition stride %d",
		e.Blob, e.Definition)
}

// Snapshot captures the live region as a compressed, independent blob.
// The blob records the stride so Restore can reject a mismatched
// definition.
func (a *DynamicArray) Snapshot(codec snapshot.Codec) ([]byte, error) {
	if uint64(a.length)*uint64(a.def.Stride()) > math.MaxUint32 {
		return nil, snapshot.ErrTooLarge
	}

	blob, err := snapshot.Compress(a.Bytes(), codec)
	if err != nil {
		return nil, err
	}

	out := make([]byte, snapshotHeaderSize+len(blob))
	binary.LittleEndian.PutUint32(out[0:], uint32(a.def.Stride()))
	binary.LittleEndian.PutUint32(out[4:], uint32(a.length))
	copy(out[snapshotHeaderSize:], blob)
	return out, nil
}

// RestoreDynamicArray rebuilds a dynamic array from a Snapshot blob taken
// under the same definition (same stride).
func RestoreDynamicArray(def *Definition, blob []byte) (*DynamicArray, error) {
	if len(blob) < snapshotHeaderSize {
		return nil, snapshot.ErrShortBlob
	}

	stride := int(binary.LittleEndian.Uint32(blob[0:]))
	length := int(binary.LittleEndian.Uint32(blob[4:]))
	if stride != def.Stride() {
		return nil, &ErrSnapshotStride{Blob: stride, Definition: def.Stride()}
	}

	data, err := snapshot.Decompress(blob[snapshotHeaderSize:])
	if err != nil {
		return nil, err
	}
	if len(data) != length*stride {
		return nil, fmt.Errorf("record: snapshot payload is %d bytes, expected %d: %w",
			len(data), length*stride, snapshot.ErrCorruptBlob)
	}

	capacity := length
	if capacity < 1 {
		capacity = 1
	}
	buf := mem.AllocAligned(capacity * stride)
	copy(buf, data)

	return &DynamicArray{Array: Array{
		def:      def,
		data:     buf,
		length:   length,
		capacity: capacity,
	}}, nil
}
