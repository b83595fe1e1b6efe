//go:build unix && !staticarray

package weealloc

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// unixProvider acquires anonymous, page-aligned memory via mmap. It never
// calls munmap: returning pages to the kernel isn't part of this
// allocator's contract.
type unixProvider struct {
	pageSize int
}

func newPlatformProvider() Provider {
	return &unixProvider{pageSize: os.Getpagesize()}
}

func (p *unixProvider) PageSize() int { return p.pageSize }

func (p *unixProvider) Acquire(minBytes int) (unsafe.Pointer, int, error) {
	if minBytes <= 0 {
		minBytes = p.pageSize
	}
	size := roundUpPages(minBytes, p.pageSize)

	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, 0, ErrOutOfMemory
	}
	return unsafe.Pointer(&b[0]), len(b), nil
}
