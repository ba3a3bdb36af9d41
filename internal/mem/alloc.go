package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of allocated buffers (64 bytes, one cache line).
// It is a multiple of every element alignment the library supports, so a field
// offset that is aligned relative to the buffer start is also aligned in memory.
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size whose first byte
// sits on a 64-byte boundary.
//
// The function over-allocates by up to Alignment-1 bytes and returns a sub-slice
// starting at the first aligned address. The underlying array stays alive through
// the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // required for alignment arithmetic
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
