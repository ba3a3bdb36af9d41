// Package mem provides memory allocation utilities for container backing buffers.
package mem
