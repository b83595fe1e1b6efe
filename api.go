// Package weealloc implements a small, allocation-latency-for-code-size
// free-list allocator aimed at WebAssembly deployments, where a handful of
// startup allocations matter far more than steady-state throughput.
//
// The core is a two-tier design: a main free list serves first-fit
// allocation and coalesces on free, and an optional segregated size-class
// layer (enabled with -tags sizeclasses) gives small, fixed-size
// allocations an O(1) fast path by never coalescing them. Page-level
// memory comes from a Provider, one implementation per target (unix mmap,
// Windows VirtualAlloc, a wasm-growable slab, or a fixed static array).
package weealloc

//go:generate go run ./internal/gensize

import "unsafe"

// Allocate returns a pointer to at least size bytes aligned to align, or
// nil on failure. align must be a power of two; release builds trust the
// caller to honor that (see ErrInvalidAlignment).
func Allocate(size, align int) unsafe.Pointer {
	assertValidAlign(align)
	return instance().allocate(uintptr(size), uintptr(align))
}

// Deallocate returns memory to the allocator. ptr must have come from a
// prior Allocate (or Malloc/Calloc) with matching size and align, and must
// not have been deallocated already.
func Deallocate(ptr unsafe.Pointer, size, align int) {
	instance().deallocate(ptr, uintptr(size), uintptr(align))
}

// Reallocate resizes the allocation at ptr, implemented as
// allocate-copy-deallocate; see DESIGN.md for why in-place growth isn't
// attempted.
func Reallocate(ptr unsafe.Pointer, oldSize, newSize, align int) unsafe.Pointer {
	assertValidAlign(align)
	return instance().reallocate(ptr, uintptr(oldSize), uintptr(newSize), uintptr(align))
}

// Malloc is Allocate's slice-returning counterpart, for callers that would
// rather carry size and a pointer in one Go value than juggle both
// separately. Memory is uninitialized.
//
// A zero-size request still gets a real, owned cell underneath (the same
// clamp Allocate applies), so the returned slice's capacity is never zero
// even though its length is. That is what lets Free recover the pointer
// for size 0 instead of mistaking it for a nil/unallocated slice.
func Malloc(size int) []byte {
	allocSize := size
	if allocSize == 0 {
		allocSize = int(minCellPayload)
	}
	p := Allocate(allocSize, int(wordSize))
	if p == nil {
		return nil
	}
	b := unsafe.Slice((*byte)(p), allocSize)
	return b[:size]
}

// Calloc is like Malloc except the returned memory is zeroed.
func Calloc(size int) []byte {
	b := Malloc(size)
	for i := range b {
		b[i] = 0
	}
	return b
}

// Free deallocates memory obtained from Malloc or Calloc. b must be the
// original slice (or reslice of it starting at index 0); Free uses
// cap(b), not len(b), to recover the original allocation size.
func Free(b []byte) {
	b = b[:cap(b)]
	if len(b) == 0 {
		return
	}
	Deallocate(unsafe.Pointer(&b[0]), len(b), int(wordSize))
}
