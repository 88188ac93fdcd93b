package reactor

import "github.com/fluxgraph/reactor/internal"

// NotReadyError signals that a compute function's data is not available
// yet. Raising it (via NotReady) leaves the node's previous value intact,
// keeps as dependencies only the sources read before the panic, and marks
// it pending rather than Clean, so the next write to anything it read
// retries the compute.
type NotReadyError = internal.NotReadyError

// ComputeError describes an arbitrary panic raised from inside a compute or
// effect callback, naming the node (if it had a debug Name) that raised it.
// The engine does not wrap panics in it: error handlers receive the raw
// panic value.
type ComputeError = internal.ComputeError

// NoOwnerError is returned by operations that require a current owner (e.g.
// SetContext) when none is in scope.
type NoOwnerError = internal.NoOwnerError

// ContextNotFoundError is returned by a Context.Value call that walks off
// the root of the owner tree without finding a Set value and has no
// default.
type ContextNotFoundError = internal.ContextNotFoundError

// NotReady panics with a NotReadyError, for use inside a Computed's or
// AsyncComputed's compute function to signal "my data hasn't arrived yet"
// instead of returning a half-formed value. cause is attached to the error
// for diagnostics and is otherwise opaque to the engine.
func NotReady(cause any) {
	panic(&internal.NotReadyError{Cause: cause})
}

// SetDebug toggles development-only diagnostics, off by default: currently
// this is a log.Printf warning whenever a signal is written from inside an
// effect's own compute function (base spec §4.B — such a write is allowed
// but flagged, since it usually indicates the effect should have derived
// that value as a Computed instead).
func SetDebug(enabled bool) {
	internal.Debug = enabled
}
