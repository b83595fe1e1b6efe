package weealloc

import "unsafe"

// Provider is the page-acquisition backend: coarse-grained, page-aligned
// memory handed to the allocator core. A Provider never releases memory
// back to its backing store; the core assumes acquired regions are
// word-aligned, disjoint from one another, and stable for the life of the
// process.
type Provider interface {
	// Acquire returns a region of at least minBytes, rounded up to
	// whatever granularity the backend works in. It returns
	// ErrOutOfMemory if the backing store is exhausted.
	Acquire(minBytes int) (base unsafe.Pointer, actualBytes int, err error)

	// PageSize reports the backend's native page granularity.
	PageSize() int
}

// roundUpPages rounds n up to a multiple of pageSize.
func roundUpPages(n, pageSize int) int {
	return (n + pageSize - 1) &^ (pageSize - 1)
}
