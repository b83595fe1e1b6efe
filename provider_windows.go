//go:build windows && !staticarray

package weealloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsProvider acquires committed memory via VirtualAlloc. Like the
// unix backend, it never frees what it acquires.
type windowsProvider struct {
	pageSize int
}

func newPlatformProvider() Provider {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	return &windowsProvider{pageSize: int(info.PageSize)}
}

func (p *windowsProvider) PageSize() int { return p.pageSize }

func (p *windowsProvider) Acquire(minBytes int) (unsafe.Pointer, int, error) {
	if minBytes <= 0 {
		minBytes = p.pageSize
	}
	size := roundUpPages(minBytes, p.pageSize)

	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil, 0, ErrOutOfMemory
	}
	return unsafe.Pointer(addr), size, nil
}
