//go:build !sizeclasses

package weealloc

// sizeClassesEnabled is false by default: every allocation goes straight
// to the main allocator unless built with -tags sizeclasses.
const sizeClassesEnabled = false
