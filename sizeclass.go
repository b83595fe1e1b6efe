package weealloc

// sizeClassLayer is the optional fast path for small, fixed-size
// allocations: one free list per word-count class, each refilled by
// carving a single large cell out of the main allocator. Cells here are
// never coalesced with their neighbors — their payload size is an
// invariant of the class they live in — so unlike the main allocator they
// need no physical-neighbor bookkeeping at all.
type sizeClassLayer struct {
	classes [maxSizeClassWords]freeList
	main    *mainAllocator
}

func newSizeClassLayer(m *mainAllocator) *sizeClassLayer {
	return &sizeClassLayer{main: m}
}

// classForSize returns the 1-based word-count class (1..maxSizeClassWords)
// that fits size bytes exactly.
func classForSize(size uintptr) int {
	words := (size + wordSize - 1) / wordSize
	if words == 0 {
		words = 1
	}
	return int(words)
}

// eligible reports whether a request belongs on the size-class fast path
// at all: oversized or over-aligned requests always go to the main
// allocator, which is the only one that knows how to split for alignment.
func eligible(size, align uintptr) bool {
	return sizeClassesEnabled && align <= wordSize && classForSize(size) <= maxSizeClassWords
}

func (s *sizeClassLayer) alloc(size uintptr) (*cellHeader, error) {
	class := classForSize(size)
	fl := &s.classes[class-1]
	if fl.head == nil {
		if err := s.refill(class); err != nil {
			return nil, err
		}
	}

	c := fl.head
	fl.head = c.freeNext()
	c.link = 0
	c.setAllocated(true)
	assertCellInvariants(c)
	return c, nil
}

// refill carves sizeClassRefillCount fixed-size cells out of one large
// block taken from the main allocator and pushes them all onto class's
// free list.
func (s *sizeClassLayer) refill(class int) error {
	payload := uintptr(class) * wordSize
	cellBytes := headerSize + payload
	want := uintptr(sizeClassRefillCount) * cellBytes

	big, err := s.main.alloc(want, wordSize)
	if err != nil {
		return err
	}

	base := uintptr(big.payload())
	avail := big.size()
	n := avail / cellBytes
	if n > sizeClassRefillCount {
		n = sizeClassRefillCount
	}
	if n == 0 {
		// Shouldn't happen: the main allocator never hands back less than
		// requested. Bail rather than carve a cell that doesn't fit.
		return ErrOutOfMemory
	}

	fl := &s.classes[class-1]
	for i := uintptr(0); i < n; i++ {
		cell := initFreeCell(base+i*cellBytes, payload)
		fl.push(cell)
	}
	return nil
}

func (s *sizeClassLayer) dealloc(c *cellHeader, class int) {
	poison(c)
	s.classes[class-1].push(c)
}
