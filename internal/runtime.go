package internal

// Runtime bundles every piece of process-wide (well: per-reactive-domain)
// state described in base spec §3 "Scheduler state" and "Current context":
// the two ready-queues, the scheduled/running flags and logical clock, and
// the current-owner/current-observer/source-accumulator cursors. Exactly
// one Runtime exists per reactive domain; GetRuntime resolves which domain
// owns the calling goroutine (see runtime_default.go / runtime_wasm.go).
type Runtime struct {
	root *Owner

	currentOwner    *Owner
	currentObserver *Computation
	tracking        bool

	scheduler Scheduler

	renderQueue []*Computation
	userQueue   []*Computation

	settledOnce     []func()
	userSettledOnce []func()

	batchDepth int
}

func newRuntime() *Runtime {
	root := NewOwner()
	return &Runtime{
		root:         root,
		currentOwner: root,
		tracking:     true,
	}
}

// CurrentOwner returns the owner currently in scope, or nil if none.
func (r *Runtime) CurrentOwner() *Owner {
	return r.currentOwner
}

// CurrentObserver returns the computation currently being (re)computed, or
// nil outside of any tracked evaluation.
func (r *Runtime) CurrentObserver() *Computation {
	return r.currentObserver
}
