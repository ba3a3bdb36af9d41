// Package numarray provides growable contiguous numeric arrays with two
// removal disciplines.
//
// Dynamic removal shifts subsequent elements left, keeping the array dense.
// Sparse removal zeroes the slot in place and never shrinks the length, so
// indices stay stable for the container's lifetime; a roaring bitmap tracks
// which slots are live.
//
// Both variants own exactly one backing buffer, grow by doubling on a full
// push, and (Dynamic only) shrink by halving once the live region drops to
// half the capacity. A reallocation swaps the owned buffer in only after
// the live region has been fully copied, so no partial state is observable.
package numarray
