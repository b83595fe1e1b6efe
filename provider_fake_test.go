package weealloc

import "unsafe"

// fakeProvider backs tests with ordinary Go heap memory instead of a real
// OS page provider, so the core's logic can be exercised on any
// GOOS/GOARCH. It can be told to fail after a fixed number of successful
// acquisitions, to exercise the exhausted-provider boundary cases.
type fakeProvider struct {
	pageSize  int
	failAfter int // 0 means never fail
	acquired  int
	slabs     [][]byte
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{pageSize: 4096}
}

func (p *fakeProvider) PageSize() int { return p.pageSize }

func (p *fakeProvider) Acquire(minBytes int) (unsafe.Pointer, int, error) {
	if p.failAfter != 0 && p.acquired >= p.failAfter {
		return nil, 0, ErrOutOfMemory
	}
	size := roundUpPages(minBytes, p.pageSize)
	slab := make([]byte, size)
	p.slabs = append(p.slabs, slab)
	p.acquired++
	return unsafe.Pointer(&slab[0]), size, nil
}
