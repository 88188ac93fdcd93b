package reactor

import "github.com/fluxgraph/reactor/internal"

// State is a node's position in the three-state mark-and-sweep protocol
// (base spec §3, §4.D), re-exported for whitebox tests that hold an
// *Observer and want to assert on it directly.
type State = internal.State

// The four states a Computation can be in. Clean < Check < Dirty is a
// meaningful ordering: it is what lets the propagator's Notify step treat
// "already at or past target" as a no-op.
const (
	StateClean    = internal.StateClean
	StateCheck    = internal.StateCheck
	StateDirty    = internal.StateDirty
	StateDisposed = internal.StateDisposed
)
