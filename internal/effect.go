package internal

// EffectOptions configures an effect's debug name, initial "previous" value
// handed to the callback on its very first run, and (for the two-phase
// form) the comparison used to decide whether a recompute's new value is
// worth running the effect callback over.
type EffectOptions struct {
	Name    string
	Initial any
	Equals  func(a, b any) bool
}

// NewEffect creates a side-effecting leaf. compute runs tracked, producing
// the value passed (together with the previous one) to run, which may
// return a cleanup invoked before the next run and on disposal. The effect
// is enqueued rather than run inline (base spec §6 createEffect: "enqueues
// on construction, runs on the first flush"): construction inside an open
// Batch defers its first run to that batch's flush, same as any other
// write. Outside of a batch there is no microtask boundary to defer to, so
// the enqueue's flush request runs to completion before NewEffect returns.
//
// When run is nil (the single-phase form), compute's own return value IS
// the cleanup and equality comparison is skipped entirely — the return
// value is frequently a non-comparable func, and the effect only reruns
// when something it read truly changed, so there is nothing useful for an
// equality check to bail out on.
func NewEffect(rt *Runtime, kind Kind, compute func(self *Computation) any, run func(value, prev any) func(), opts EffectOptions) *Computation {
	equals := opts.Equals
	if run == nil {
		equals = alwaysDiffer
	} else if equals == nil {
		equals = defaultEquals
	}

	c := newComputation(kind, rt.currentOwner, compute, equals)
	c.name = opts.Name
	c.prevValue = opts.Initial
	c.effectFn = run
	c.state = StateDirty

	rt.enqueueEffect(c)

	return c
}
