package weealloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFreeList(t *testing.T, payload uintptr) (*freeList, *cellHeader) {
	t.Helper()
	arena := make([]byte, 4096)
	addr := uintptr(unsafe.Pointer(&arena[0]))
	c := initFreeCell(addr, payload)
	fl := &freeList{}
	fl.push(c)
	return fl, c
}

func TestFirstFitExactSizeDoesNotSplit(t *testing.T) {
	fl, c := newTestFreeList(t, 64)

	got := fl.firstFit(64, wordSize)
	require.NotNil(t, got)
	assert.Equal(t, c.addr(), got.addr())
	assert.Equal(t, uintptr(64), got.size())
	assert.True(t, got.isAllocated())
	assert.Nil(t, fl.head, "exact-fit cell must be fully removed from the list")
}

func TestFirstFitOneWordShortOfSplitDoesNotSplit(t *testing.T) {
	// A cell whose excess over the request is less than
	// headerSize+minCellPayload must be handed out whole.
	req := uintptr(64)
	excess := headerSize + minCellPayload - wordSize
	fl, c := newTestFreeList(t, req+excess)

	got := fl.firstFit(req, wordSize)
	require.NotNil(t, got)
	assert.Equal(t, c.addr(), got.addr())
	assert.Equal(t, req+excess, got.size(), "must not split when remainder can't host a cell")
	assert.Nil(t, fl.head)
}

func TestFirstFitSplitsWhenExcessIsLarge(t *testing.T) {
	req := uintptr(64)
	excess := headerSize + minCellPayload + wordSize
	fl, c := newTestFreeList(t, req+excess)

	got := fl.firstFit(req, wordSize)
	require.NotNil(t, got)
	assert.Equal(t, c.addr(), got.addr())
	assert.Equal(t, req, got.size())
	assert.True(t, got.isAllocated())

	require.NotNil(t, fl.head, "remainder must be pushed back onto the list")
	remainder := fl.head
	assert.Equal(t, excess-headerSize, remainder.size())
	assert.False(t, remainder.isAllocated())
	assert.True(t, got.nextIsFree())
}

func TestFirstFitMissReturnsNil(t *testing.T) {
	fl, _ := newTestFreeList(t, 16)
	got := fl.firstFit(64, wordSize)
	assert.Nil(t, got)
}

func TestFirstFitLargeAlignmentSplitsFrontFragment(t *testing.T) {
	// Craft a cell whose payload starts 64 bytes before a 4096 boundary --
	// comfortably more than headerSize+minCellPayload, so the padding can
	// become its own free cell.
	arena := make([]byte, 32768)
	raw := uintptr(unsafe.Pointer(&arena[0]))
	boundary := alignUp(raw+8192, 4096)
	payloadAddr := boundary - 64
	addr := payloadAddr - headerSize

	c := initFreeCell(addr, 8192)
	fl := &freeList{}
	fl.push(c)

	got := fl.firstFit(8, 4096)
	require.NotNil(t, got, "alignment 4096 request should be satisfiable")
	assert.Zero(t, uintptr(got.payload())%4096)
	assert.True(t, got.isAllocated())

	// The split remainder is pushed after the front fragment, so the
	// fragment sits right behind the head.
	require.NotNil(t, fl.head, "front padding must become its own free cell")
	front := fl.head.freeNext()
	require.NotNil(t, front, "front padding must become its own free cell")
	assert.Equal(t, addr, front.addr())
	assert.False(t, front.isAllocated())
	assert.Equal(t, uintptr(64-headerSize), front.size())
}

func TestFirstFitSkipsCellWhenAlignmentPaddingTooSmall(t *testing.T) {
	// Padding needed is one word: too small to host headerSize+minCellPayload.
	arena := make([]byte, 32768)
	raw := uintptr(unsafe.Pointer(&arena[0]))
	boundary := alignUp(raw+8192, 4096)
	payloadAddr := boundary - wordSize
	addr := payloadAddr - headerSize

	c := initFreeCell(addr, 256)
	fl := &freeList{}
	fl.push(c)

	got := fl.firstFit(8, 4096)
	assert.Nil(t, got, "padding smaller than a cell must be skipped, not wasted")
	assert.Same(t, c, fl.head, "rejected cell must remain on the list untouched")
}

func TestRemoveNodeUnlinksMiddleElement(t *testing.T) {
	arena := make([]byte, 4096)
	base := uintptr(unsafe.Pointer(&arena[0]))
	a := initFreeCell(base, 16)
	b := initFreeCell(base+headerSize+16, 16)
	c := initFreeCell(base+2*(headerSize+16), 16)

	fl := &freeList{}
	fl.push(a)
	fl.push(b)
	fl.push(c) // list: c -> b -> a

	ok := fl.removeNode(b)
	require.True(t, ok)
	assert.Equal(t, c, fl.head)
	assert.Equal(t, a, c.freeNext())

	assert.False(t, fl.removeNode(b), "already-removed node can't be removed again")
}

func TestSplitAtInheritsSuccessorFlag(t *testing.T) {
	arena := make([]byte, 4096)
	addr := uintptr(unsafe.Pointer(&arena[0]))
	c := initFreeCell(addr, 128)
	c.setNextIsFree(true)

	head, tail := splitAt(c, 32)
	assert.Equal(t, uintptr(32), head.size())
	assert.True(t, head.nextIsFree(), "head's successor is the new tail, which is free")
	assert.True(t, tail.nextIsFree(), "tail inherits the original successor-is-free state")
	assert.Equal(t, head.physSuccessor().addr(), tail.addr())
}
