//go:build !extra_assertions

package weealloc

// Release builds pay nothing for diagnostics: these compile away to
// nothing under inlining, and the core never otherwise touches unsafe
// formatting or panics for caller mistakes.
func poison(c *cellHeader)          {}
func assertCellInvariants(c *cellHeader) {}
func assertValidAlign(align int)    {}
