package eltype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Kind identifies a primitive element type.
type Kind uint8

const (
	// Int8 is a signed 8-bit integer.
	Int8 Kind = iota
	// Uint8 is an unsigned 8-bit integer.
	Uint8
	// Int16 is a signed 16-bit integer.
	Int16
	// Uint16 is an unsigned 16-bit integer.
	Uint16
	// Int32 is a signed 32-bit integer.
	Int32
	// Uint32 is an unsigned 32-bit integer.
	Uint32
	// Int64 is a signed 64-bit integer.
	Int64
	// Uint64 is an unsigned 64-bit integer.
	Uint64
	// Float32 is an IEEE 754 single-precision float.
	Float32
	// Float64 is an IEEE 754 double-precision float.
	Float64

	numKinds
)

var kindNames = [...]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ErrUnknownKind indicates an unrecognized element kind tag.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown element kind: %s", e.Kind)
}

type readFunc func(buf []byte, off int) float64

type writeFunc func(buf []byte, off int, v float64)

// Type is an immutable element type descriptor with bound little-endian
// read/write against a byte buffer at an offset.
//
// For primitives the alignment always equals the size. Read and Write do
// not bounds-check; callers validate offsets before dispatching.
type Type struct {
	kind  Kind
	size  int
	read  readFunc
	write writeFunc
}

// Kind returns the kind tag of the type.
func (t Type) Kind() Kind { return t.kind }

// Size returns the byte width of one element.
func (t Type) Size() int { return t.size }

// Align returns the byte alignment of the type (equal to its size).
func (t Type) Align() int { return t.size }

// String returns the canonical name of the type.
func (t Type) String() string { return t.kind.String() }

// Read decodes the element stored at buf[off:] as float64.
func (t Type) Read(buf []byte, off int) float64 {
	return t.read(buf, off)
}

// Write encodes v into buf[off:].
// Integer kinds truncate the fractional part and wrap on overflow.
func (t Type) Write(buf []byte, off int, v float64) {
	t.write(buf, off, v)
}

var types = [numKinds]Type{
	Int8: {kind: Int8, size: 1,
		read:  func(b []byte, off int) float64 { return float64(int8(b[off])) },
		write: func(b []byte, off int, v float64) { b[off] = byte(int8(int64(v))) },
	},
	Uint8: {kind: Uint8, size: 1,
		read:  func(b []byte, off int) float64 { return float64(b[off]) },
		write: func(b []byte, off int, v float64) { b[off] = byte(int64(v)) },
	},
	Int16: {kind: Int16, size: 2,
		read: func(b []byte, off int) float64 {
			return float64(int16(binary.LittleEndian.Uint16(b[off:])))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint16(b[off:], uint16(int64(v)))
		},
	},
	Uint16: {kind: Uint16, size: 2,
		read: func(b []byte, off int) float64 {
			return float64(binary.LittleEndian.Uint16(b[off:]))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint16(b[off:], uint16(int64(v)))
		},
	},
	Int32: {kind: Int32, size: 4,
		read: func(b []byte, off int) float64 {
			return float64(int32(binary.LittleEndian.Uint32(b[off:])))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint32(b[off:], uint32(int64(v)))
		},
	},
	Uint32: {kind: Uint32, size: 4,
		read: func(b []byte, off int) float64 {
			return float64(binary.LittleEndian.Uint32(b[off:]))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint32(b[off:], uint32(int64(v)))
		},
	},
	Int64: {kind: Int64, size: 8,
		read: func(b []byte, off int) float64 {
			return float64(int64(binary.LittleEndian.Uint64(b[off:])))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint64(b[off:], uint64(int64(v)))
		},
	},
	Uint64: {kind: Uint64, size: 8,
		read: func(b []byte, off int) float64 {
			return float64(binary.LittleEndian.Uint64(b[off:]))
		},
		write: func(b []byte, off int, v float64) {
			// Through int64 like the other unsigned kinds, so negative
			// values wrap deterministically instead of hitting the
			// implementation-defined float-to-unsigned conversion.
			binary.LittleEndian.PutUint64(b[off:], uint64(int64(v)))
		},
	},
	Float32: {kind: Float32, size: 4,
		read: func(b []byte, off int) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(b[off:])))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint32(b[off:], math.Float32bits(float32(v)))
		},
	},
	Float64: {kind: Float64, size: 8,
		read: func(b []byte, off int) float64 {
			return math.Float64frombits(binary.LittleEndian.Uint64(b[off:]))
		},
		write: func(b []byte, off int, v float64) {
			binary.LittleEndian.PutUint64(b[off:], math.Float64bits(v))
		},
	},
}

// Of returns the descriptor for the given kind.
// An unknown kind fails here so every later consumer can assume a valid
// descriptor.
func Of(k Kind) (Type, error) {
	if k >= numKinds {
		return Type{}, &ErrUnknownKind{Kind: k}
	}
	return types[k], nil
}

// MustOf is like Of but panics on an unknown kind.
// Intended for statically known kinds in tests and package setup.
func MustOf(k Kind) Type {
	t, err := Of(k)
	if err != nil {
		panic(err)
	}
	return t
}
