// Package ringbuf provides a fixed-capacity FIFO circular buffer over a
// contiguous numeric byte buffer.
//
// Enqueue on a full buffer silently overwrites the oldest element; that is
// part of the contract, not an error. Dequeue and Peek on an empty buffer
// fail. The buffer is single-threaded by contract, like every container in
// this module.
package ringbuf
