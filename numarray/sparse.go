package numarray

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/structgo/eltype"
	"github.com/hupe1980/structgo/internal/mem"
)

// Sparse is a growable contiguous numeric array with index-stable removal.
//
// Remove zeroes the slot in place instead of shifting, so an index handed
// out once stays valid for the container's lifetime. The length never
// decreases and there is no Pop. A roaring bitmap tracks which slots are
// live.
type Sparse struct {
	typ      eltype.Type
	data     []byte
	length   int
	capacity int
	occupied *roaring.Bitmap
}

// NewSparse creates an empty sparse array with the given element kind and
// initial capacity.
func NewSparse(kind eltype.Kind, initialCapacity int) (*Sparse, error) {
	typ, err := eltype.Of(kind)
	if err != nil {
		return nil, err
	}
	if initialCapacity < 1 {
		return nil, &ErrInvalidCapacity{Capacity: initialCapacity}
	}

	return &Sparse{
		typ:      typ,
		data:     mem.AllocAligned(initialCapacity * typ.Size()),
		capacity: initialCapacity,
		occupied: roaring.New(),
	}, nil
}

// SparseFromSlice creates a sparse array holding the usable input values in
// order. NaN entries are filtered out first; an input with nothing left
// fails.
func SparseFromSlice(kind eltype.Kind, values []float64) (*Sparse, error) {
	filtered := filterNaN(values)
	if len(filtered) == 0 {
		return nil, ErrNoValues
	}

	s, err := NewSparse(kind, len(filtered))
	if err != nil {
		return nil, err
	}
	for _, v := range filtered {
		s.Push(v)
	}
	return s, nil
}

// Push appends v at the next index and returns that index, doubling the
// capacity when full.
func (s *Sparse) Push(v float64) int {
	if s.length == s.capacity {
		newCap := mem.GrowCap(s.capacity)
		newData := mem.AllocAligned(newCap * s.typ.Size())
		copy(newData, s.data[:s.length*s.typ.Size()])
		s.data = newData
		s.capacity = newCap
	}

	i := s.length
	s.typ.Write(s.data, i*s.typ.Size(), v)
	s.occupied.Add(uint32(i))
	s.length++
	return i
}

// At returns the element at index i. A removed slot reads as zero.
func (s *Sparse) At(i int) (float64, error) {
	if i < 0 || i >= s.length {
		return 0, &ErrOutOfRange{Index: i, Length: s.length}
	}
	return s.typ.Read(s.data, i*s.typ.Size()), nil
}

// SetAt replaces the element at index i and marks the slot live.
func (s *Sparse) SetAt(i int, v float64) error {
	if i < 0 || i >= s.length {
		return &ErrOutOfRange{Index: i, Length: s.length}
	}
	s.typ.Write(s.data, i*s.typ.Size(), v)
	s.occupied.Add(uint32(i))
	return nil
}

// Remove zeroes the slot at index i. Indices of other elements are
// unaffected and the length does not change.
func (s *Sparse) Remove(i int) error {
	if i < 0 || i >= s.length {
		return &ErrOutOfRange{Index: i, Length: s.length}
	}

	size := s.typ.Size()
	clear(s.data[i*size : (i+1)*size])
	s.occupied.Remove(uint32(i))
	return nil
}

// Has reports whether the slot at index i is live (set and not removed).
func (s *Sparse) Has(i int) bool {
	return i >= 0 && i < s.length && s.occupied.Contains(uint32(i))
}

// Len returns the number of addressable slots (monotonically increasing).
func (s *Sparse) Len() int { return s.length }

// Cap returns the current capacity.
func (s *Sparse) Cap() int { return s.capacity }

// Kind returns the element kind.
func (s *Sparse) Kind() eltype.Kind { return s.typ.Kind() }

// LiveCount returns the number of live slots.
func (s *Sparse) LiveCount() int {
	return int(s.occupied.GetCardinality())
}

// Occupied iterates over the live slot indices in ascending order.
func (s *Sparse) Occupied() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.occupied.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice materializes all slots (removed slots as zero) as an independent
// copy.
func (s *Sparse) ToSlice() []float64 {
	out := make([]float64, s.length)
	for i := range out {
		out[i] = s.typ.Read(s.data, i*s.typ.Size())
	}
	return out
}
