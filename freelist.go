package weealloc

// freeList is a singly linked chain of free cells rooted at head.
// Insertion is always LIFO: push puts the new cell at the head.
type freeList struct {
	head *cellHeader
}

// push inserts c at the head of the list. The caller guarantees c is not
// already present on any free list.
func (fl *freeList) push(c *cellHeader) {
	c.setAllocated(false)
	c.setFreeNext(fl.head)
	fl.head = c
}

// remove unlinks c, given the node immediately before it (nil if c is the
// head). This is the O(1) half of removal; finding prev for a cell whose
// list position isn't already known is removeNode's O(n) job.
func (fl *freeList) remove(prev, c *cellHeader) {
	if prev == nil {
		fl.head = c.freeNext()
		return
	}
	prev.setFreeNext(c.freeNext())
}

// removeNode unlinks target by walking from head to find its predecessor.
// O(n) in the list length; this is the cost the design accepts in exchange
// for a one-word free-list link.
func (fl *freeList) removeNode(target *cellHeader) bool {
	var prev *cellHeader
	for c := fl.head; c != nil; c = c.freeNext() {
		if c == target {
			fl.remove(prev, c)
			return true
		}
		prev = c
	}
	return false
}

// splitAt cuts a free cell c into two adjacent free cells: a head of
// headPayload bytes and a tail holding the remainder. c's header is reused
// for the head; a new header is stamped at the boundary for the tail. Both
// halves come back free; flags/physical neighbor bookkeeping beyond that is
// the caller's responsibility (it knows what's about to happen to each
// half).
func splitAt(c *cellHeader, headPayload uintptr) (head, tail *cellHeader) {
	total := c.size()
	tailAddr := c.addr() + headerSize + headPayload
	tailPayload := total - headPayload - headerSize
	tail = initFreeCell(tailAddr, tailPayload)
	tail.setNextIsFree(c.nextIsFree())
	c.setSize(headPayload)
	c.setAllocated(false)
	c.setNextIsFree(true)
	return c, tail
}

// canSplit reports whether a cell of totalPayload bytes can be cut into a
// headPayload-byte piece and a tail that still has room for a header plus
// the minimum useful payload.
func canSplit(totalPayload, headPayload uintptr) bool {
	if headPayload > totalPayload {
		return false
	}
	remainder := totalPayload - headPayload
	return remainder >= headerSize+minCellPayload
}

// fit describes a candidate cell located by firstFit, already accounting
// for any alignment padding that had to be peeled off the front.
type fit struct {
	cell      *cellHeader // the piece that will satisfy the request
	frontFrag *cellHeader // non-nil if front-alignment padding was split off
}

// firstFit walks the list looking for the first cell that can satisfy
// reqSize at reqAlign, splits it as needed, and unlinks whatever is handed
// back from the list. It returns the cell with at least reqSize bytes of
// correctly aligned payload, or nil if nothing fits.
//
// Policy is first-fit, not best-fit: simplicity over packing density.
func (fl *freeList) firstFit(reqSize, reqAlign uintptr) *cellHeader {
	var prev *cellHeader
	for c := fl.head; c != nil; {
		next := c.freeNext()
		if f, ok := tryFit(c, reqSize, reqAlign); ok {
			fl.remove(prev, c)
			if f.frontFrag != nil {
				fl.push(f.frontFrag)
			}
			result := f.cell
			if canSplit(result.size(), reqSize) {
				var remainder *cellHeader
				result, remainder = splitAt(result, reqSize)
				fl.push(remainder)
			}
			result.setAllocated(true)
			return result
		}
		prev = c
		c = next
	}
	return nil
}

// tryFit checks whether c can satisfy reqSize at reqAlign, peeling off a
// front fragment for alignment if one is needed and large enough to stand
// on its own. If the padding needed is nonzero but too small to host a
// cell, c is rejected outright (first-fit moves on) rather than wasting it
// as unaccounted fragmentation.
func tryFit(c *cellHeader, reqSize, reqAlign uintptr) (fit, bool) {
	payloadAddr := uintptr(c.payload())
	aligned := alignUp(payloadAddr, reqAlign)
	pad := aligned - payloadAddr

	if pad == 0 {
		if c.size() >= reqSize {
			return fit{cell: c}, true
		}
		return fit{}, false
	}

	if pad < headerSize+minCellPayload {
		return fit{}, false
	}

	padPayload := pad - headerSize
	if !canSplit(c.size(), padPayload) {
		return fit{}, false
	}
	tailPayload := c.size() - padPayload - headerSize
	if tailPayload < reqSize {
		return fit{}, false
	}
	front, tail := splitAt(c, padPayload)
	return fit{cell: tail, frontFrag: front}, true
}
