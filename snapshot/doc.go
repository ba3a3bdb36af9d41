// Package snapshot compresses container buffers into self-describing
// in-memory blobs.
//
// A blob is a single block: a one-byte codec tag, a little-endian header
// recording the uncompressed and compressed sizes, and the payload. Blocks
// that do not compress well are stored raw. Blobs are an in-process
// exchange format between a container and its restore constructor; they
// carry no cross-version or cross-machine compatibility promise.
package snapshot
