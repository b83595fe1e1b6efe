package weealloc

// pageBlock records the extent of one region acquired from a Provider, so
// that a cell's physical predecessor can be found by walking forward from
// a known base rather than storing a back-pointer. Invariant 1 calls this
// "reconstructable from size + base"; this is that reconstruction.
type pageBlock struct {
	base uintptr
	end  uintptr
}

// mainAllocator owns the "big" free list described by the main-allocator
// component: it answers allocation requests directly and, when the size
// classes layer is enabled, is what refills each class's free list.
type mainAllocator struct {
	provider Provider
	free     freeList
	blocks   []pageBlock
}

func newMainAllocator(p Provider) *mainAllocator {
	return &mainAllocator{provider: p}
}

// blockContaining returns the page block owning addr, if any.
func (m *mainAllocator) blockContaining(addr uintptr) (pageBlock, bool) {
	for _, b := range m.blocks {
		if addr >= b.base && addr < b.end {
			return b, true
		}
	}
	return pageBlock{}, false
}

// predecessorOf finds c's physical predecessor within its page block by
// walking forward from the block's base, per invariant 1. Returns nil if c
// is the first cell in its block (no physical predecessor exists) or the
// block can't be identified (shouldn't happen for a cell this allocator
// produced).
func (m *mainAllocator) predecessorOf(c *cellHeader) *cellHeader {
	blk, ok := m.blockContaining(c.addr())
	if !ok || c.addr() == blk.base {
		return nil
	}
	cur := cellAt(blk.base)
	for {
		next := cur.physSuccessor()
		if next.addr() == c.addr() {
			return cur
		}
		if next.addr() >= blk.end || next.addr() <= cur.addr() {
			// Malformed chain; extra_assertions builds would have caught
			// this earlier at the mutation that caused it.
			return nil
		}
		cur = next
	}
}

// markAllocated flips c's own IS_ALLOCATED bit and, if c has a physical
// predecessor, updates that predecessor's NEXT_IS_FREE bit to keep
// invariant 5 (predecessor.NEXT_IS_FREE == !c.IS_ALLOCATED) true. This is
// the allocator's one O(n)-in-block-size operation per spec's accepted
// cost; size-class cells never pay it because they never coalesce.
func (m *mainAllocator) markAllocated(c *cellHeader, allocated bool) {
	c.setAllocated(allocated)
	if pred := m.predecessorOf(c); pred != nil {
		pred.setNextIsFree(!allocated)
	}
}

// alloc rounds size up to a word multiple, tries the free list, and on a
// miss asks the provider for more memory before retrying exactly once.
func (m *mainAllocator) alloc(size, align uintptr) (*cellHeader, error) {
	size = alignUp(size, wordSize)
	if size < minCellPayload {
		size = minCellPayload
	}

	if c := m.free.firstFit(size, align); c != nil {
		m.markAllocated(c, true)
		assertCellInvariants(c)
		return c, nil
	}

	if err := m.refill(size); err != nil {
		return nil, err
	}

	if c := m.free.firstFit(size, align); c != nil {
		m.markAllocated(c, true)
		assertCellInvariants(c)
		return c, nil
	}
	return nil, ErrOutOfMemory
}

// refill asks the provider for enough memory to satisfy size plus slack,
// and installs the result as a single new free cell spanning the block.
func (m *mainAllocator) refill(size uintptr) error {
	want := size + headerSize + defaultRefillBytes
	base, actual, err := m.provider.Acquire(int(want))
	if err != nil {
		return err
	}

	addr := uintptr(base)
	blockEnd := addr + uintptr(actual)
	m.blocks = append(m.blocks, pageBlock{base: addr, end: blockEnd})

	c := initFreeCell(addr, uintptr(actual)-headerSize)
	c.setNextIsFree(false)
	m.free.push(c)
	return nil
}

// dealloc returns c to the main free list, coalescing with a free physical
// successor and/or predecessor first (invariant 6: no two adjacent free
// cells may coexist).
func (m *mainAllocator) dealloc(c *cellHeader) {
	poison(c)

	if c.nextIsFree() {
		succ := c.physSuccessor()
		m.free.removeNode(succ)
		c.setSize(c.size() + headerSize + succ.size())
		c.setNextIsFree(succ.nextIsFree())
	}

	pred := m.predecessorOf(c)
	if pred != nil && !pred.isAllocated() {
		m.free.removeNode(pred)
		pred.setSize(pred.size() + headerSize + c.size())
		pred.setNextIsFree(c.nextIsFree())
		c = pred
	} else if pred != nil {
		pred.setNextIsFree(true)
	}

	assertCellInvariants(c)
	m.free.push(c)
}
