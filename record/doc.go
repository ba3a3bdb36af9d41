// Package record provides struct definitions, zero-copy views, and record
// arrays over raw byte buffers.
//
// A Definition owns the computed layout of an ordered field schema. Views
// are non-owning (buffer, offset) windows bound to a definition: getting or
// setting a primitive field reads or writes the backing buffer directly,
// and extended fields (fixed numeric arrays, fixed-capacity text, embedded
// ring buffers) hand out accessors scoped to the exact sub-range, so
// mutations through them land in the parent buffer.
//
// Arrays store records contiguously at stride intervals. The fixed Array
// never reallocates; DynamicArray doubles on a full push and halves once
// the live region drops to half the capacity. Views handed out before a
// reallocation keep aliasing the old buffer and must be re-derived.
package record
