package reactor

import "github.com/fluxgraph/reactor/internal"

// Batch runs fn with flushing deferred until fn returns, coalescing any
// number of signal writes inside it into a single settle pass. Nested
// Batch calls are transparent: only the outermost one triggers a flush.
func Batch(fn func()) {
	rt := internal.GetRuntime()
	rt.Batch(fn)
}

// Untrack runs fn with dependency tracking suspended: reads of signals or
// computeds inside fn do not become dependencies of whatever is currently
// evaluating.
func Untrack(fn func()) {
	rt := internal.GetRuntime()
	rt.Untrack(fn)
}

// UntrackValue is Untrack for the common case of reading a single value out
// from under tracking.
func UntrackValue[T any](fn func() T) T {
	var v T
	Untrack(func() { v = fn() })
	return v
}

// OnSettled arms fn to run exactly once, after the current (or next) flush
// reaches a fixed point — including any effects that themselves wrote
// signals and triggered further rounds of recomputation.
func OnSettled(fn func()) {
	rt := internal.GetRuntime()
	rt.OnSettled(fn)
}

// OnUserSettled is OnSettled restricted to the same fixed point, kept
// distinct so call sites can document that they specifically care about
// user-effect completion rather than render-effect completion.
func OnUserSettled(fn func()) {
	rt := internal.GetRuntime()
	rt.OnUserSettled(fn)
}

// FlushSync drains the current goroutine's ready-queues to a fixed point
// right now. Every write and effect construction already requests a flush
// as soon as it is not inside a Batch, so FlushSync is mainly useful to
// force that to happen before asserting on effect output in a test, or
// after writes made from inside an untracked callback. A call made while a
// flush is already running (e.g. from inside an effect callback) is a
// no-op; that flush will simply pick up the new work on its next pass.
func FlushSync() {
	rt := internal.GetRuntime()
	rt.FlushSync()
}
