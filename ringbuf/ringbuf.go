package ringbuf

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/internal/mem"
)

var (
	// ErrEmpty is returned by Dequeue and Peek when no element is buffered.
	ErrEmpty = errors.New("ringbuf: buffer is empty")
	// ErrNoValues is returned by FromSlice when no usable value remains
	// after NaN filtering.
	ErrNoValues = errors.New("ringbuf: no usable values in input")
)

// ErrInvalidCapacity indicates a non-positive requested capacity.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("ringbuf: invalid capacity %d (must be >= 1)", e.Capacity)
}

// Ring is a fixed-capacity circular buffer of one element kind.
// It owns a single contiguous byte buffer; head, tail, and count cursors
// wrap modulo the capacity.
type Ring struct {
	typ      eltype.Type
	data     []byte
	capacity int

	head  int
	tail  int
	count int
}

// New creates an empty ring with the given element kind and capacity.
func New(kind eltype.Kind, capacity int) (*Ring, error) {
	typ, err := eltype.Of(kind)
	if err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}

	return &Ring{
		typ:      typ,
		data:     mem.AllocAligned(capacity * typ.Size()),
		capacity: capacity,
	}, nil
}

// FromSlice creates a ring whose capacity equals the number of usable input
// values and enqueues them in order. NaN entries are filtered out first; an
// input with nothing left fails.
func FromSlice(kind eltype.Kind, values []float64) (*Ring, error) {
	filtered := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		filtered = append(filtered, v)
	}
	if len(filtered) == 0 {
		return nil, ErrNoValues
	}

	r, err := New(kind, len(filtered))
	if err != nil {
		return nil, err
	}
	for _, v := range filtered {
		r.Enqueue(v)
	}
	return r, nil
}

// Enqueue appends v at the tail. If the ring is already full the oldest
// element is silently overwritten; count never exceeds the capacity.
func (r *Ring) Enqueue(v float64) {
	r.typ.Write(r.data, r.tail*r.typ.Size(), v)
	r.tail = (r.tail + 1) % r.capacity

	if r.count == r.capacity {
		r.head = (r.head + 1) % r.capacity
	} else {
		r.count++
	}
}

// Dequeue removes and returns the oldest element.
func (r *Ring) Dequeue() (float64, error) {
	if r.count == 0 {
		return 0, ErrEmpty
	}

	v := r.typ.Read(r.data, r.head*r.typ.Size())
	r.head = (r.head + 1) % r.capacity
	r.count--
	return v, nil
}

// Peek returns the oldest element without removing it.
func (r *Ring) Peek() (float64, error) {
	if r.count == 0 {
		return 0, ErrEmpty
	}
	return r.typ.Read(r.data, r.head*r.typ.Size()), nil
}

// Len returns the number of buffered elements.
func (r *Ring) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return r.capacity }

// Kind returns the element kind.
func (r *Ring) Kind() eltype.Kind { return r.typ.Kind() }

// Clear resets the cursors. Memory is not zeroed.
func (r *Ring) Clear() {
	r.head, r.tail, r.count = 0, 0, 0
}

// ToSlice materializes the buffered elements in FIFO order without mutating
// the ring. The returned slice is an independent copy.
func (r *Ring) ToSlice() []float64 {
	out := make([]float64, r.count)
	for i := 0; i < r.count; i++ {
		idx := (r.head + i) % r.capacity
		out[i] = r.typ.Read(r.data, idx*r.typ.Size())
	}
	return out
}
