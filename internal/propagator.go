package internal

// notify implements the three-state mark phase (base spec §4.D). It is
// monotonic: a node already at or beyond target is left untouched, except
// a pending node (its last run raised NotReady), which is re-notified so the
// write reaches its observers and, for an effect, re-enqueues it. The
// first time an effect leaves Clean it is pushed onto the scheduler's
// ready-queue and a flush is requested; every other observer transitively
// reachable is marked Check regardless of the state just assigned to node,
// which is what keeps direct observers Dirty and everything further
// downstream merely "maybe dirty".
func notify(rt *Runtime, node *Computation, target State) {
	if node.state == StateDisposed || (node.state >= target && !node.pending) {
		return
	}

	wasClean := node.state == StateClean || node.pending
	if node.state < target {
		node.state = target
	}

	if node.kind.isEffect() && wasClean {
		rt.enqueueEffect(node)
	}

	for _, obs := range node.observers {
		notify(rt, obs, StateCheck)
	}
}

// propagate notifies every direct observer of node that node's value just
// changed: direct observers become Dirty, and notify's own recursion marks
// everything transitively reachable from them Check.
func propagate(rt *Runtime, node *Computation) {
	// The marking runs inside a batch, so the flush an effect's enqueue
	// requests waits until every observer has been marked: notify itself
	// only flips flags and enqueues, it never runs user code, so there is no
	// aliasing hazard and node.observers is iterated directly.
	rt.Batch(func() {
		for _, obs := range node.observers {
			notify(rt, obs, StateDirty)
		}
	})
}

// updateIfNecessary is the pull half of the engine (base spec §4.D). A
// Check node recursively settles its sources first; if that settling makes
// the node itself Dirty (because some source's value actually changed), the
// remaining sources are skipped since the impending recompute may not even
// read them. A Dirty node is recomputed. A Clean (or already Disposed) node
// is a no-op.
func updateIfNecessary(rt *Runtime, node *Computation) {
	if node.compute == nil || node.state == StateClean || node.state == StateDisposed {
		return
	}

	if node.state == StateCheck {
		for _, src := range node.sources {
			updateIfNecessary(rt, src)
			if node.state == StateDirty {
				break
			}
		}
		if node.state == StateCheck {
			node.state = StateClean
		}
	}

	if node.state == StateDirty {
		update(rt, node)
	}
}

// update re-executes node's compute function (base spec §4.D "update").
// Child owners created by the previous run are disposed first so the new
// run starts with a clean scope; the previous source list is kept so the
// tracker can reuse prefix edges instead of reallocating.
func update(rt *Runtime, node *Computation) {
	node.Owner.DisposeChildren()

	// Single-phase effects (no separate effectFn) run their whole body,
	// cleanup included, inline during compute; the previous cycle's
	// cleanup must therefore run here, before the body runs again. Two-
	// phase effects (effectFn set) instead run their cleanup from
	// runEffectCallback, right before the untracked callback — see
	// scheduler.go.
	if node.kind.isEffect() && node.effectFn == nil && node.cleanup != nil {
		cb := node.cleanup
		node.cleanup = nil
		cb()
	}

	beginTracking(node)

	value, caught := runCompute(rt, node)

	if caught != nil {
		reconcileSources(node)
		node.state = StateDirty // retry on the next input change

		if nr, ok := caught.(*NotReadyError); ok {
			node.pending = true
			_ = nr
			return
		}

		dispatchError(node.Owner, caught)
		return
	}

	node.pending = false
	reconcileSources(node)

	wasInitialized := node.initialized
	changed := !wasInitialized || !node.equals(node.value, value)
	node.initialized = true

	if node.kind.isEffect() {
		// before the first run, prevValue keeps EffectOptions.Initial
		if wasInitialized {
			node.prevValue = node.value
		}
		node.value = value
		node.modified = changed

		if node.effectFn == nil {
			if cleanup, ok := value.(func()); ok {
				node.cleanup = cleanup
			}
		}
	} else {
		node.value = value
	}

	node.state = StateClean

	if changed {
		propagate(rt, node)
	}
}

// runCompute invokes node.compute under tracking, recovering any panic so
// the caller can apply base spec §7's NotReady/ComputeError handling
// uniformly.
func runCompute(rt *Runtime, node *Computation) (value any, caught any) {
	defer func() {
		if r := recover(); r != nil {
			caught = r
		}
	}()

	rt.runWithComputation(node, func() {
		value = node.compute(node)
	})
	return
}

// disposeSelf tears down the reactive-graph side of a Computation when its
// owner is disposed: it removes every source edge (so upstream signals
// drop it from their observer sets, firing unobserved callbacks as
// appropriate), runs the effect's own cleanup if any, and marks the node
// Disposed so any straggling reads return its frozen last value
// (DisposedUse, base spec §7) instead of being recomputed.
func (c *Computation) disposeSelf() {
	if c.state == StateDisposed {
		return
	}

	if c.cleanup != nil {
		cb := c.cleanup
		c.cleanup = nil
		cb()
	}

	clearAllSources(c)

	c.state = StateDisposed
}
