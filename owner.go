package reactor

import "github.com/fluxgraph/reactor/internal"

// Owner is a disposable scope: every signal, computed and effect created
// while it is current becomes its child, and disposing it tears down that
// whole subtree, LIFO in creation order.
type Owner struct {
	o *internal.Owner
}

// CreateRoot creates a new top-level Owner, runs fn with it current, and
// returns the Owner so the caller can Dispose it later. Roots are how a
// long-lived reactive subtree (e.g. one per request, one per UI component)
// is given an explicit lifetime independent of its creator's.
func CreateRoot(fn func(o *Owner)) *Owner {
	rt := internal.GetRuntime()
	inner := internal.NewOwner()
	owner := &Owner{o: inner}

	rt.RunWithOwner(inner, func() {
		fn(owner)
	})
	return owner
}

// Run executes fn with this owner current, so anything fn creates becomes
// its child.
func (o *Owner) Run(fn func()) {
	rt := internal.GetRuntime()
	rt.RunWithOwner(o.o, fn)
}

// RunChild creates a new nested scope under o, runs fn with it current, and
// returns the child. Disposing o disposes every child created this way
// (reverse creation order); a child can also be disposed on its own,
// independent of its siblings.
func (o *Owner) RunChild(fn func(child *Owner)) *Owner {
	rt := internal.GetRuntime()
	child := internal.NewOwner()
	o.o.AddChild(child)
	owner := &Owner{o: child}

	rt.RunWithOwner(child, func() {
		fn(owner)
	})
	return owner
}

// Dispose tears down this owner and every descendant scope, running their
// cleanups LIFO. A second call is a no-op.
func (o *Owner) Dispose() {
	o.o.Dispose()
}

// Disposed reports whether Dispose has already run.
func (o *Owner) Disposed() bool {
	return o.o.Disposed()
}

// OnCleanup registers fn to run once, LIFO with every other cleanup on
// this owner, when it is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.o.OnCleanup(fn)
}

// OnError registers fn as this owner's error handler; see the package-level
// OnError for dispatch semantics.
func (o *Owner) OnError(fn func(any)) {
	o.o.OnError(fn)
}

// OnCleanup registers fn to run once when the current owner is disposed.
// It is silently dropped if called with no owner in scope (e.g. at package
// init, outside any CreateRoot/Run/effect body).
func OnCleanup(fn func()) {
	rt := internal.GetRuntime()
	rt.OnCleanup(fn)
}

// OnDispose is an alias for OnCleanup.
func OnDispose(fn func()) {
	OnCleanup(fn)
}

// OnError registers fn as an error handler on the current owner. When a
// descendant computed or effect's callback panics and no closer handler is
// registered, fn receives the panic value; if fn itself panics (rethrows),
// the search for a handler resumes at this owner's parent.
func OnError(fn func(any)) {
	rt := internal.GetRuntime()
	if rt.CurrentOwner() != nil {
		rt.CurrentOwner().OnError(fn)
	}
}

// GetOwner returns a handle to the current owner, or nil if none is in
// scope.
func GetOwner() *Owner {
	rt := internal.GetRuntime()
	cur := rt.CurrentOwner()
	if cur == nil {
		return nil
	}
	return &Owner{o: cur}
}

// RunWithOwner executes fn with owner as the current owner for the
// duration of the call, restoring whatever was current before on every
// exit path, including a panic inside fn. It lets code that captured an
// Owner handle earlier (e.g. stashed across a callback boundary) resume
// creating children under it without needing lexical nesting under the
// original Run/CreateRoot call.
func RunWithOwner(owner *Owner, fn func()) {
	rt := internal.GetRuntime()
	var target *internal.Owner
	if owner != nil {
		target = owner.o
	}
	rt.RunWithOwner(target, fn)
}

// CatchError runs fn under a fresh child of the current owner whose error
// handler is handler: any panic raised by a compute or effect created
// inside fn (directly, or from a descendant scope that has no closer
// handler of its own) is delivered to handler instead of escalating past
// this call. If handler itself panics, the error is handed to the next
// handler up the parent chain — CatchError only intercepts once per
// throw, it does not swallow a handler's own re-throw.
func CatchError(fn func(), handler func(err any)) {
	rt := internal.GetRuntime()
	child := internal.NewOwner()
	if cur := rt.CurrentOwner(); cur != nil {
		cur.AddChild(child)
	}
	child.OnError(handler)

	rt.RunWithOwner(child, fn)
}

// Observer is a handle to whatever Computation is currently being
// (re)evaluated — the thing that reads during fn will attach their
// dependency edges to. It exists for whitebox inspection (base spec §6,
// "Observable state for tests"); ordinary reactive code never needs to
// hold one.
type Observer struct {
	c *internal.Computation
}

// Name returns the observer's debug name, or "" if none was given.
func (ob *Observer) Name() string { return ob.c.Name() }

// SourceCount returns how many upstream nodes the observer read during its
// most recent run.
func (ob *Observer) SourceCount() int { return len(ob.c.Sources()) }

// ObserverCount returns how many downstream nodes currently read the
// observer itself.
func (ob *Observer) ObserverCount() int { return len(ob.c.Observers()) }

// State returns the observer's current propagator state (Clean/Check/
// Dirty/Disposed) as the package-level State alias, so callers can compare
// it against the State* constants re-exported alongside it.
func (ob *Observer) State() State { return ob.c.State() }

// GetObserver returns a handle to the Computation currently being
// evaluated (the target of dependency tracking), or nil outside of any
// tracked compute.
func GetObserver() *Observer {
	rt := internal.GetRuntime()
	cur := rt.CurrentObserver()
	if cur == nil {
		return nil
	}
	return &Observer{c: cur}
}
