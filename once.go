package weealloc

import "sync"

var (
	globalOnce sync.Once
	global     *walloc
)

// instance returns the process-wide allocator, constructing it exactly
// once regardless of how many goroutines race to call it first.
func instance() *walloc {
	globalOnce.Do(func() {
		global = newWalloc(newPlatformProvider())
	})
	return global
}
