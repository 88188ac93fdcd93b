package internal

// SignalOptions configures a signal's identity comparison, debug name, and
// the "went from observed to unobserved" lifecycle hook (base spec §3
// Lifecycle, §6 createSignal options).
type SignalOptions struct {
	Equals     func(a, b any) bool
	Name       string
	Unobserved func()
}

// NewSignal creates a leaf Computation with no compute function: its value
// only ever changes via Write, never via recomputation.
func NewSignal(rt *Runtime, initial any, opts SignalOptions) *Computation {
	c := newComputation(KindSignal, rt.currentOwner, nil, opts.Equals)
	c.value = initial
	c.initialized = true
	c.name = opts.Name
	c.unobserved = opts.Unobserved
	return c
}

// Read returns the signal's current value, tracking it against the current
// observer if one is active. A disposed signal still returns its last
// value (base spec §7 DisposedUse) rather than erroring.
func (rt *Runtime) Read(c *Computation) any {
	rt.track(c)
	return c.value
}

// Write stores v on the signal. If v compares unequal to the current value
// the signal's observers are marked Dirty/Check and a flush is requested;
// writing an equal value is a no-op (base spec §6 property "bailout").
// Writing a disposed signal is also a no-op.
func (rt *Runtime) Write(c *Computation, v any) {
	if c.state == StateDisposed {
		return
	}

	if obs := rt.currentObserver; obs != nil && obs.kind.isEffect() {
		warnWriteInsideEffect(c, obs)
	}

	if c.initialized && c.equals(c.value, v) {
		return
	}

	c.value = v
	c.initialized = true
	propagate(rt, c)

	rt.requestFlush()
}
