package internal

import "errors"

// Scheduler is the process-wide (per-domain) flush state described in base
// spec §3/§4.E: a logical clock, and the scheduled/running flags that
// together implement reentrant-safe, microtask-batched flushing. Go has no
// native microtask queue, so "batched until the microtask boundary" is
// realized the way the teacher does it: a write schedules, and then flushes
// synchronously unless a Batch is in progress — from the caller's
// perspective this is indistinguishable from "runs on the next microtask"
// because there is no intervening work in a single-threaded domain.
type Scheduler struct {
	clock     uint64
	scheduled bool
	running   bool
}

const maxFlushIterations = 100000

// enqueueEffect pushes node onto its phase's ready-queue exactly once.
func (r *Runtime) enqueueEffect(node *Computation) {
	if node.queued {
		return
	}
	node.queued = true

	switch node.kind {
	case KindRenderEffect:
		r.renderQueue = append(r.renderQueue, node)
	default:
		r.userQueue = append(r.userQueue, node)
	}

	r.requestFlush()
}

// requestFlush marks the domain scheduled and, unless a batch is open,
// flushes immediately.
func (r *Runtime) requestFlush() {
	r.scheduler.scheduled = true
	if r.batchDepth == 0 {
		r.runScheduled()
	}
}

// Batch defers flushing until fn returns, coalescing any number of writes
// inside it into a single flush (base spec §6 createSignal/write semantics
// combined with the teacher's NewBatch).
func (r *Runtime) Batch(fn func()) {
	r.batchDepth++
	fn()
	r.batchDepth--

	if r.batchDepth == 0 && r.scheduler.scheduled {
		r.runScheduled()
	}
}

// FlushSync processes the ready-queues to a fixed point right now,
// regardless of batching. A reentrant call (from inside an already-running
// flush) is a no-op, matching base spec §4.E.
func (r *Runtime) FlushSync() {
	r.runScheduled()
}

// runScheduled drains the render-effect and user-effect queues in that
// order — each drain pulls its own memo dependencies via updateIfNecessary,
// so no separate pure-computation queue is needed — increments the logical
// clock, then invokes the effect
// callbacks of whatever is still marked modified — repeating until no
// further work was scheduled during the pass (base spec §4.E phase order
// and re-entry rules). Once the loop reaches a fixed point, any OnSettled/
// OnUserSettled callbacks armed during this flush fire exactly once.
func (r *Runtime) runScheduled() {
	if r.scheduler.running {
		return
	}
	r.scheduler.running = true
	defer func() { r.scheduler.running = false }()

	iterations := 0
	for r.scheduler.scheduled {
		r.scheduler.scheduled = false

		iterations++
		if iterations > maxFlushIterations {
			panic(errors.New("reactor: possible infinite update loop detected"))
		}

		renderBatch := r.renderQueue
		r.renderQueue = nil
		for _, n := range renderBatch {
			n.queued = false
			updateIfNecessary(r, n)
		}

		userBatch := r.userQueue
		r.userQueue = nil
		for _, n := range userBatch {
			n.queued = false
			updateIfNecessary(r, n)
		}

		r.scheduler.clock++

		runEffectBatch(r, renderBatch)
		runEffectBatch(r, userBatch)
	}

	settled := r.settledOnce
	r.settledOnce = nil
	userSettled := r.userSettledOnce
	r.userSettledOnce = nil

	for _, cb := range settled {
		cb()
	}
	for _, cb := range userSettled {
		cb()
	}
}

// runEffectBatch invokes the effect callback of every node in batch that is
// still marked modified and has not been disposed, clearing modified
// afterward. Disposal is checked just before invocation so work queued for
// a node disposed mid-flush is silently skipped (base spec §4.E
// Cancellation).
func runEffectBatch(rt *Runtime, batch []*Computation) {
	for _, n := range batch {
		if n.state == StateDisposed || !n.modified {
			continue
		}
		n.modified = false
		runEffectCallback(rt, n)
	}
}

// runEffectCallback runs the previous cleanup (if any) then the effect
// function with (value, prev), storing whatever cleanup it returns.
func runEffectCallback(rt *Runtime, n *Computation) {
	if n.effectFn == nil {
		return
	}

	if n.cleanup != nil {
		cb := n.cleanup
		n.cleanup = nil
		cb()
	}

	rt.RunWithOwner(n.Owner, func() {
		defer func() {
			if r := recover(); r != nil {
				dispatchError(n.Owner, r)
			}
		}()
		n.cleanup = n.effectFn(n.value, n.prevValue)
	})
}

// OnSettled arms fn to run exactly once, after the current or next flush in
// this domain reaches a fixed point (base spec §4.F, supplementing the
// distilled core spec).
func (r *Runtime) OnSettled(fn func()) {
	r.settledOnce = append(r.settledOnce, fn)
}

// OnUserSettled arms fn the same way as OnSettled but is kept in its own
// list so callers can distinguish "after everything" ordering needs if a
// future variant wants to run it strictly after user effects only; in this
// single-flush-loop design both lists fire at the same fixed point.
func (r *Runtime) OnUserSettled(fn func()) {
	r.userSettledOnce = append(r.userSettledOnce, fn)
}
