package numarray

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/internal/mem"
	"github.com/hupe1980/structgo/snapshot"
)

// Snapshot envelope: [kind u8][length u32] followed by a snapshot blob of
// the live region.
const snapshotHeaderSize = 1 + 4

// Snapshot captures the live region as a compressed, independent blob.
func (d *Dynamic) Snapshot(codec snapshot.Codec) ([]byte, error) {
	if uint64(d.length)*uint64(d.typ.Size()) > math.MaxUint32 {
		return nil, snapshot.ErrTooLarge
	}

	blob, err := snapshot.Compress(d.data[:d.length*d.typ.Size()], codec)
	if err != nil {
		return nil, err
	}

	out := make([]byte, snapshotHeaderSize+len(blob))
	out[0] = byte(d.typ.Kind())
	binary.LittleEndian.PutUint32(out[1:], uint32(d.length))
	copy(out[snapshotHeaderSize:], blob)
	return out, nil
}

// RestoreDynamic rebuilds a dynamic array from a Snapshot blob.
func RestoreDynamic(blob []byte) (*Dynamic, error) {
	if len(blob) < snapshotHeaderSize {
		return nil, snapshot.ErrShortBlob
	}

	typ, err := eltype.Of(eltype.Kind(blob[0]))
	if err != nil {
		return nil, err
	}
	length := int(binary.LittleEndian.Uint32(blob[1:]))

	data, err := snapshot.Decompress(blob[snapshotHeaderSize:])
	if err != nil {
		return nil, err
	}
	if len(data) != length*typ.Size() {
		return nil, fmt.Errorf("numarray: snapshot payload is %d bytes, expected %d: %w",
			len(data), length*typ.Size(), snapshot.ErrCorruptBlob)
	}

	capacity := length
	if capacity < 1 {
		capacity = 1
	}
	buf := mem.AllocAligned(capacity * typ.Size())
	copy(buf, data)

	return &Dynamic{
		typ:      typ,
		data:     buf,
		length:   length,
		capacity: capacity,
	}, nil
}
