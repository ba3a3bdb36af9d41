package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the compression algorithm for a snapshot blob.
type Codec uint8

const (
	// CodecNone stores the payload uncompressed.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast, good for hot data).
	CodecLZ4 Codec = 1
	// CodecZSTD uses ZSTD block compression (better ratio, good for cold data).
	CodecZSTD Codec = 2
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

var (
	// ErrShortBlob is returned when a blob is too small to hold a header.
	ErrShortBlob = errors.New("snapshot: blob too short")
	// ErrCorruptBlob is returned when the header contradicts the payload.
	ErrCorruptBlob = errors.New("snapshot: corrupt blob")
	// ErrTooLarge is returned when a payload exceeds the uint32 size fields
	// of the blob header.
	ErrTooLarge = errors.New("snapshot: payload exceeds 4 GiB header limit")
)

// ErrUnknownCodec indicates an unrecognized codec tag.
type ErrUnknownCodec struct {
	Codec Codec
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("snapshot: unknown codec %s", e.Codec)
}

// Blob layout: [codec u8][uncompressedSize u32][compressedSize u32][payload].
// compressedSize == 0 means the payload is stored raw.
const headerSize = 1 + 4 + 4

// ZSTD encoder/decoder pools; construction is expensive relative to a block.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress encodes data into a blob using the given codec.
// If compression does not pay (ratio above 0.9) the payload is stored raw
// under the same codec tag.
func Compress(data []byte, codec Codec) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	var compressed []byte

	switch codec {
	case CodecNone:
	case CodecLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		if n > 0 { // n == 0 means incompressible
			compressed = buf[:n]
		}
	case CodecZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, &ErrUnknownCodec{Codec: codec}
	}

	if compressed == nil || float64(len(compressed)) > float64(len(data))*0.9 {
		return assemble(codec, data, nil), nil
	}
	return assemble(codec, data, compressed), nil
}

func assemble(codec Codec, raw, compressed []byte) []byte {
	payload := compressed
	compressedSize := len(compressed)
	if payload == nil {
		payload = raw
		compressedSize = 0
	}

	blob := make([]byte, headerSize+len(payload))
	blob[0] = byte(codec)
	binary.LittleEndian.PutUint32(blob[1:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(blob[5:], uint32(compressedSize))
	copy(blob[headerSize:], payload)
	return blob
}

// Decompress decodes a blob produced by Compress.
// The returned slice is freshly allocated unless the blob stored a raw
// zero-length payload.
func Decompress(blob []byte) ([]byte, error) {
	if len(blob) < headerSize {
		return nil, ErrShortBlob
	}

	codec := Codec(blob[0])
	uncompressedSize := int(binary.LittleEndian.Uint32(blob[1:]))
	compressedSize := int(binary.LittleEndian.Uint32(blob[5:]))
	payload := blob[headerSize:]

	if compressedSize == 0 {
		if len(payload) != uncompressedSize {
			return nil, ErrCorruptBlob
		}
		out := make([]byte, uncompressedSize)
		copy(out, payload)
		return out, nil
	}
	if len(payload) != compressedSize {
		return nil, ErrCorruptBlob
	}

	switch codec {
	case CodecLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if n != uncompressedSize {
			return nil, ErrCorruptBlob
		}
		return out, nil
	case CodecZSTD:
		dec := getZstdDecoder()
		out, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, err
		}
		if len(out) != uncompressedSize {
			return nil, ErrCorruptBlob
		}
		return out, nil
	case CodecNone:
		// CodecNone always stores raw (compressedSize == 0).
		return nil, ErrCorruptBlob
	default:
		return nil, &ErrUnknownCodec{Codec: codec}
	}
}
