//go:build extra_assertions

package weealloc

import "unsafe"

// poison overwrites a freed cell's payload with a fixed byte pattern so a
// use-after-free shows up as garbage instead of silently working. Only
// compiled in under extra_assertions, per spec.md's "optional poison-on-
// free assertion mode".
func poison(c *cellHeader) {
	b := unsafe.Slice((*byte)(c.payload()), c.size())
	for i := range b {
		b[i] = poisonByte
	}
}

// assertCellInvariants checks the subset of the data model's invariants
// that are observable from a single cell: word-aligned size, and (when it
// claims a free successor) that the successor really is free and really
// is laid out immediately after c.
func assertCellInvariants(c *cellHeader) {
	if c.size()%wordSize != 0 {
		panic("weealloc: cell payload size is not a word multiple")
	}
	if c.nextIsFree() {
		succ := c.physSuccessor()
		if succ.isAllocated() {
			panic("weealloc: NEXT_IS_FREE set but successor is allocated")
		}
	}
}

// assertValidAlign panics if align isn't a power of two. Spec.md permits
// this to be debug-only; release builds trust the caller instead.
func assertValidAlign(align int) {
	if align <= 0 || !isPowerOfTwo(uintptr(align)) {
		panic(ErrInvalidAlignment)
	}
}
