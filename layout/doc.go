// Package layout computes byte offsets, padding, and stride for ordered
// field schemas.
//
// The engine walks fields in declaration order, rounding a byte cursor up to
// each field's alignment and tracking the maximum alignment seen. The final
// cursor, rounded up to that maximum, becomes the stride: the fixed step
// between elements of an array of this record, chosen so every element stays
// aligned. Fields are never reordered; minimizing padding is the caller's
// responsibility.
package layout
