// Package reactor is a fine-grained, push-pull reactive runtime: signals,
// computeds and effects connected by a dependency graph that recomputes the
// minimum necessary work on every write and never observes a stale value
// partway through a recompute (no glitches).
//
// Every reactive node lives in a goroutine-scoped domain: the first call
// from a given goroutine lazily creates that goroutine's Runtime, and all
// signals/computeds/effects created from it share one dependency graph with
// no locking. Crossing goroutines deliberately requires going through a
// channel or similar, the same way the underlying engine does.
package reactor
