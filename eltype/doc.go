// Package eltype defines the primitive element types understood by the
// layout engine and every numeric container in this module.
//
// Each of the ten canonical kinds (signed/unsigned 8/16/32/64-bit integers,
// 32/64-bit floats) resolves to an immutable Type descriptor carrying its
// byte size, alignment, and bound little-endian read/write against a byte
// buffer at an offset. Encoding is always little-endian by policy, never
// host-dependent.
//
// Values cross the API as float64. Integer kinds wider than 53 bits
// round-trip exactly only within ±2^53.
package eltype
