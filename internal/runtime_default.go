//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// Each goroutine drives its own reactive domain (base spec §5: "single-
// threaded cooperative" — the current-owner/current-observer cursors are
// per-thread values). Keying the domain registry by goroutine id, exactly
// as the teacher does, lets independent goroutines each own a graph with no
// locking while keeping a single goroutine's operations strictly ordered.
var runtimes sync.Map // map[int64]*Runtime

// GetRuntime returns the Runtime owned by the calling goroutine, creating
// it on first use.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if rt, ok := runtimes.Load(gid); ok {
		return rt.(*Runtime)
	}

	rt := newRuntime()
	runtimes.Store(gid, rt)
	return rt
}
