package internal

// RunWithOwner executes fn with owner as the current owner, restoring the
// previous owner on every exit path including panics (base spec §4.A
// runWithOwner).
func (r *Runtime) RunWithOwner(owner *Owner, fn func()) {
	prev := r.currentOwner
	r.currentOwner = owner
	defer func() { r.currentOwner = prev }()

	fn()
}

// runWithComputation executes fn with node set as both the current owner
// (its own scope) and the current observer (the target of dependency
// tracking), restoring both cursors afterward.
func (r *Runtime) runWithComputation(node *Computation, fn func()) {
	prevOwner := r.currentOwner
	prevObserver := r.currentObserver

	r.currentOwner = node.Owner
	r.currentObserver = node

	defer func() {
		r.currentOwner = prevOwner
		r.currentObserver = prevObserver
	}()

	fn()
}

// Untrack runs fn with dependency tracking suspended: reads inside fn do
// not alter the enclosing observer's source list (base spec §8 property 8).
func (r *Runtime) Untrack(fn func()) {
	prev := r.tracking
	r.tracking = false
	defer func() { r.tracking = prev }()

	fn()
}

// OnCleanup registers fn on the current owner; it is silently dropped if
// there is no current owner (base spec §4.A onCleanup).
func (r *Runtime) OnCleanup(fn func()) {
	if r.currentOwner != nil {
		r.currentOwner.OnCleanup(fn)
	}
}

// track records a read of dep by the current observer, if tracking is
// active. It implements the "re-use-on-match" strategy of base spec §4.C:
// while the newly-read sequence still matches the previously recorded one
// position-for-position, no edge is touched at all; only a divergence
// allocates an accumulator and starts relinking (invariant T1).
func (r *Runtime) track(dep *Computation) {
	sub := r.currentObserver
	if sub == nil || !r.tracking {
		return
	}

	if sub.trackAccum == nil {
		if sub.trackIndex < len(sub.sources) && sub.sources[sub.trackIndex] == dep {
			sub.trackIndex++
			return
		}

		// Divergence: the source read at this position differs from what
		// was recorded last time. Switch to accumulator mode, carrying
		// forward the still-valid prefix (already linked, untouched) and
		// linking the new entry.
		prefixLen := sub.trackIndex
		accum := make([]*Computation, prefixLen, prefixLen+4)
		copy(accum, sub.sources[:prefixLen])
		slots := make([]int, prefixLen, prefixLen+4)
		copy(slots, sub.sourceSlots[:prefixLen])

		depSlot := linkEdge(sub, dep, prefixLen)
		sub.trackAccum = append(accum, dep)
		sub.trackAccumSlots = append(slots, depSlot)
		return
	}

	if n := len(sub.trackAccum); n > 0 && sub.trackAccum[n-1] == dep {
		return // consecutive re-read of the same source: one edge suffices
	}
	subSlot := len(sub.trackAccum)
	depSlot := linkEdge(sub, dep, subSlot)
	sub.trackAccum = append(sub.trackAccum, dep)
	sub.trackAccumSlots = append(sub.trackAccumSlots, depSlot)
}

// beginTracking resets a computation's tracker cursor before re-running its
// compute function.
func beginTracking(node *Computation) {
	node.trackIndex = 0
	node.trackAccum = nil
	node.trackAccumSlots = nil
}

// reconcileSources finalizes the source list for node after its compute
// function has run, unlinking any now-stale suffix and (if a divergence
// occurred) adopting the accumulator as the new source list.
func reconcileSources(node *Computation) {
	if node.trackAccum == nil {
		if node.trackIndex < len(node.sources) {
			unlinkSourcesFrom(node, node.trackIndex)
		}
		node.trackIndex = 0
		return
	}

	unlinkSourcesFrom(node, node.trackIndex)
	node.sources = node.trackAccum
	node.sourceSlots = node.trackAccumSlots

	node.trackAccum = nil
	node.trackAccumSlots = nil
	node.trackIndex = 0
}
