// Package mmap provides read-only memory mapping of files.
//
// A mapping exposes the file contents as a plain []byte without copying,
// which lets record arrays serve zero-copy views directly over file-backed
// buffers. Mapped data is read-only; writing through it faults.
package mmap
