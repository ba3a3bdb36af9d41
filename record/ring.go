package record

import (
	"encoding/binary"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/ringbuf"
)

// Ring is a zero-copy accessor over an embedded circular buffer field.
//
// The field stores three uint32 cursors (head, tail, count) followed by the
// payload. The accessor itself is stateless: every call re-reads the
// cursors from the header bytes and writes them back, so any number of
// accessors over the same region always agree.
type Ring struct {
	elem       eltype.Type
	buf        []byte
	off        int
	capacity   int
	payloadOff int
}

// Header cursor offsets within the field.
const (
	ringHeadOff  = 0
	ringTailOff  = 4
	ringCountOff = 8
)

func (r *Ring) cursor(off int) int {
	return int(binary.LittleEndian.Uint32(r.buf[r.off+off:]))
}

func (r *Ring) setCursor(off, v int) {
	binary.LittleEndian.PutUint32(r.buf[r.off+off:], uint32(v))
}

func (r *Ring) slot(i int) int {
	return r.off + r.payloadOff + i*r.elem.Size()
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return r.capacity }

// Kind returns the element kind.
func (r *Ring) Kind() eltype.Kind { return r.elem.Kind() }

// Len returns the number of buffered elements.
func (r *Ring) Len() int { return r.cursor(ringCountOff) }

// Enqueue appends v at the tail, silently overwriting the oldest element
// when the ring is already full.
func (r *Ring) Enqueue(v float64) {
	head := r.cursor(ringHeadOff)
	tail := r.cursor(ringTailOff)
	count := r.cursor(ringCountOff)

	r.elem.Write(r.buf, r.slot(tail), v)
	r.setCursor(ringTailOff, (tail+1)%r.capacity)

	if count == r.capacity {
		r.setCursor(ringHeadOff, (head+1)%r.capacity)
	} else {
		r.setCursor(ringCountOff, count+1)
	}
}

// Dequeue removes and returns the oldest element.
func (r *Ring) Dequeue() (float64, error) {
	head := r.cursor(ringHeadOff)
	count := r.cursor(ringCountOff)
	if count == 0 {
		return 0, ringbuf.ErrEmpty
	}

	v := r.elem.Read(r.buf, r.slot(head))
	r.setCursor(ringHeadOff, (head+1)%r.capacity)
	r.setCursor(ringCountOff, count-1)
	return v, nil
}

// Peek returns the oldest element without removing it.
func (r *Ring) Peek() (float64, error) {
	if r.cursor(ringCountOff) == 0 {
		return 0, ringbuf.ErrEmpty
	}
	return r.elem.Read(r.buf, r.slot(r.cursor(ringHeadOff))), nil
}

// Clear resets the cursors. The payload is not zeroed.
func (r *Ring) Clear() {
	r.setCursor(ringHeadOff, 0)
	r.setCursor(ringTailOff, 0)
	r.setCursor(ringCountOff, 0)
}

// ToSlice materializes the buffered elements in FIFO order as an
// independent copy, without mutating the cursors.
func (r *Ring) ToSlice() []float64 {
	head := r.cursor(ringHeadOff)
	count := r.cursor(ringCountOff)

	out := make([]float64, count)
	for i := 0; i < count; i++ {
		out[i] = r.elem.Read(r.buf, r.slot((head+i)%r.capacity))
	}
	return out
}
