// Package structgo provides data-oriented memory layout for Go: struct
// definitions with computed offsets, padding, and stride; zero-copy views
// over raw byte buffers; fixed and growable record arrays; growable and
// sparse numeric arrays; and fixed-capacity circular buffers, standalone or
// embedded inside records.
//
// # Quick Start
//
//	def, err := structgo.NewSchema().
//	    Field("id", eltype.Uint32).
//	    Field("mass", eltype.Float64).
//	    Array("pos", eltype.Float32, 3).
//	    Text("tag", 8).
//	    Ring("recent", eltype.Float64, 4).
//	    Build()
//
//	particles, err := def.NewDynamicArray(64)
//	v, err := particles.Push(map[string]float64{"id": 1, "mass": 0.5})
//
//	pos, err := v.FixedArray("pos")
//	pos.SetAt(0, 1.25) // writes straight into the array's buffer
//
// Field order is the caller's choice and is never reordered; the layout
// report (def.Report()) shows where padding went:
//
//	fmt.Println(def.Report())
//
// # Memory Model
//
// Numbers are encoded little-endian regardless of host order. Views are
// non-owning windows over a buffer: mutations through a view or an
// extended-field accessor land directly in the backing storage. Growable
// containers own exactly one buffer at a time and replace it only after
// the live region has been copied; views taken before a resize keep
// pointing at the old buffer and must be re-derived.
//
// All containers are single-threaded by contract. There are no locks or
// atomics; concurrent mutation without external coordination is undefined.
//
// See the eltype, layout, record, numarray, ringbuf, and snapshot packages
// for the full surface.
package structgo
