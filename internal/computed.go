package internal

// ComputedOptions configures a memo's identity comparison and debug name.
type ComputedOptions struct {
	Equals func(a, b any) bool
	Name   string
}

// NewComputed creates a memoized derivation. It starts Dirty and
// uninitialized: the first evaluation happens lazily, on the first Read,
// rather than eagerly at construction (so a memo that's never read never
// runs its compute function at all).
func NewComputed(rt *Runtime, compute func(self *Computation) any, opts ComputedOptions) *Computation {
	c := newComputation(KindMemo, rt.currentOwner, compute, opts.Equals)
	c.name = opts.Name
	c.state = StateDirty
	return c
}

// ReadComputed settles the memo to a current value if necessary, tracks it
// against the current observer, and returns the value. Reading a disposed
// memo returns its last computed value without recomputing (base spec §7
// DisposedUse).
func (rt *Runtime) ReadComputed(c *Computation) any {
	if c.state != StateDisposed {
		updateIfNecessary(rt, c)
	}
	rt.track(c)
	return c.value
}
