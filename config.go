package weealloc

// Tuning constants. The specification this module implements fixes only
// their purpose, not their values; these are chosen to keep the common
// case (a handful of startup allocations) fast without growing the code.
const (
	// minCellPayload is the smallest payload a split is allowed to leave
	// behind. Below this, a would-be remainder cell can't do anything
	// useful and the whole cell is handed out unsplit instead.
	minCellPayload = 2 * wordSize

	// defaultRefillBytes is how much the main allocator asks the page
	// provider for when the main free list can't satisfy a request,
	// beyond what the request itself needs.
	defaultRefillBytes = 1 << 16 // one wasm page

	// sizeClassRefillCount is k from the size-classes design: how many
	// same-size cells to carve out of one main-allocator block on a
	// size-class refill.
	sizeClassRefillCount = 32

	// maxSizeClassWords is the largest payload, in words, handled by the
	// size-class layer; anything bigger is routed to the main allocator.
	maxSizeClassWords = 256

	// poisonByte is written across freed payloads under extra_assertions.
	poisonByte = 0xaf
)
