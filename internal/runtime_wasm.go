//go:build wasm

package internal

import "sync"

// WebAssembly builds run single-threaded with no goroutine scheduler worth
// keying off of, so the whole program shares one reactive domain.
var (
	wasmOnce sync.Once
	wasmRT   *Runtime
)

// GetRuntime returns the single process-wide Runtime.
func GetRuntime() *Runtime {
	wasmOnce.Do(func() {
		wasmRT = newRuntime()
	})
	return wasmRT
}
