//go:build wasm

package weealloc

import "unsafe"

// These are the thin "binding glue" the specification treats as an
// external collaborator: a WebAssembly host has no way to call an
// unexported Go function, so each export here does nothing but adapt
// calling convention (uint32 offsets instead of unsafe.Pointer/int) and
// forward into the real API in api.go.

//go:wasmexport malloc
func wasmMalloc(size, align uint32) uint32 {
	p := Allocate(int(size), int(align))
	return uint32(uintptr(p))
}

//go:wasmexport free
func wasmFree(ptr, size, align uint32) {
	Deallocate(unsafe.Pointer(uintptr(ptr)), int(size), int(align))
}

//go:wasmexport realloc
func wasmRealloc(ptr, oldSize, newSize, align uint32) uint32 {
	p := Reallocate(unsafe.Pointer(uintptr(ptr)), int(oldSize), int(newSize), int(align))
	return uint32(uintptr(p))
}
