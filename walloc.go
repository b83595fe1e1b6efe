package weealloc

import (
	"sync"
	"unsafe"
)

// walloc is the global singleton's state: the main allocator, the
// optional size-class layer, and the mutex that makes every call into a
// critical section. Go's sync.Mutex already does the job the
// specification's per-platform lock primitives exist to provide (a futex
// on Linux, a no-op fast path when uncontended, whatever the scheduler
// needs on wasm); there is no separate pthread/SRWLOCK/no-op variant here.
type walloc struct {
	mu      sync.Mutex
	main    *mainAllocator
	classes *sizeClassLayer
}

func newWalloc(p Provider) *walloc {
	m := newMainAllocator(p)
	return &walloc{
		main:    m,
		classes: newSizeClassLayer(m),
	}
}

// allocate is the routing logic described in the system overview: small,
// word-aligned requests go to the size-class layer when it's enabled;
// everything else goes to the main allocator. Re-entrancy into allocate
// while mu is held is forbidden, same as the specification requires.
func (w *walloc) allocate(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		size = minCellPayload
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var (
		c   *cellHeader
		err error
	)
	if eligible(size, align) {
		c, err = w.classes.alloc(size)
	} else {
		c, err = w.main.alloc(size, align)
	}
	if err != nil {
		return nil
	}
	return c.payload()
}

func (w *walloc) deallocate(ptr unsafe.Pointer, size, align uintptr) {
	if ptr == nil {
		return
	}
	if size == 0 {
		size = minCellPayload
	}

	c := cellFromPayload(ptr)

	w.mu.Lock()
	defer w.mu.Unlock()

	if eligible(size, align) {
		w.classes.dealloc(c, classForSize(size))
		return
	}
	w.main.dealloc(c)
}

func (w *walloc) reallocate(ptr unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer {
	if ptr == nil {
		return w.allocate(newSize, align)
	}
	if newSize == 0 {
		w.deallocate(ptr, oldSize, align)
		return nil
	}

	out := w.allocate(newSize, align)
	if out == nil {
		return nil
	}
	n := oldSize
	if newSize < n {
		n = newSize
	}
	copyBytes(out, ptr, n)
	w.deallocate(ptr, oldSize, align)
	return out
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}
