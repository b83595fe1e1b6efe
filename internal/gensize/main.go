// Command gensize regenerates staticsize_generated.go from the
// STATIC_ARRAY_BACKEND_BYTES environment variable, defaulting to 32 MiB
// when unset. It exists so the static-array provider's size is a real Go
// constant (usable in an array type, foldable by the compiler) rather than
// something read with os.Getenv at init time, which this module's core
// avoids so it stays dependency-free for no_std-equivalent builds.
//
// Run via: go generate ./...
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const defaultBytes = 33554432

const template = `// Code generated by internal/gensize from STATIC_ARRAY_BACKEND_BYTES; DO NOT EDIT.

//go:build staticarray

package weealloc

const staticArrayBackendBytes = %d
`

func main() {
	n := defaultBytes
	if v := os.Getenv("STATIC_ARRAY_BACKEND_BYTES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("gensize: invalid STATIC_ARRAY_BACKEND_BYTES %q: %v", v, err)
		}
		n = parsed
	}

	out := fmt.Sprintf(template, n)
	if err := os.WriteFile("staticsize_generated.go", []byte(out), 0o644); err != nil {
		log.Fatalf("gensize: %v", err)
	}
}
