package record

import (
	"fmt"
	"io"

	"github.com/hupe1980/structgo/internal/mmap"
)

// ErrBadFileSize indicates a mapped file whose size is not a positive
// multiple of the definition stride.
type ErrBadFileSize struct {
	Size   int
	Stride int
}

func (e *ErrBadFileSize) Error() string {
	return fmt.Sprintf("record: file size %d is not a positive multiple of stride %d",
		e.Size, e.Stride)
}

// LoadArray maps the file at path read-only and exposes its bytes as a
// full fixed array (length == capacity == size/stride) without copying.
//
// The returned closer owns the mapping; the array and every view derived
// from it are invalid after Close. The mapping is read-only: Set, Push,
// and accessor writes fault at the OS level. Use Get, At, and the read
// sides of the accessors.
func LoadArray(def *Definition, path string) (*Array, io.Closer, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, nil, err
	}

	n := len(m.Data)
	if n == 0 || n%def.Stride() != 0 {
		m.Close()
		return nil, nil, &ErrBadFileSize{Size: n, Stride: def.Stride()}
	}

	count := n / def.Stride()
	a := &Array{
		def:      def,
		data:     m.Data,
		length:   count,
		capacity: count,
	}
	return a, m, nil
}
