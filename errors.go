package weealloc

import "errors"

var (
	// ErrOutOfMemory is returned by a Provider, or by the main allocator
	// after a failed refill, when no memory can be produced.
	ErrOutOfMemory = errors.New("weealloc: out of memory")

	// ErrInvalidAlignment is the value Allocate and Reallocate panic with
	// when align is not a power of two. They only check this under the
	// extra_assertions build tag; release builds trust the caller.
	ErrInvalidAlignment = errors.New("weealloc: alignment must be a power of two")
)
