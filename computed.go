package reactor

import "github.com/fluxgraph/reactor/internal"

// Computed is a cached derivation recomputed only when a dependency it read
// last time actually changed.
type Computed[T any] struct {
	node *internal.Computation
}

// ComputedOption configures a Computed at construction time.
type ComputedOption[T any] func(*internal.ComputedOptions)

// WithComputedEquals overrides the default == comparison, letting a memo
// over a slice or struct bail out on structural equality instead of
// identity.
func WithComputedEquals[T any](equals func(a, b T) bool) ComputedOption[T] {
	return func(o *internal.ComputedOptions) {
		o.Equals = func(a, b any) bool { return equals(a.(T), b.(T)) }
	}
}

// WithComputedName attaches a debug name.
func WithComputedName[T any](name string) ComputedOption[T] {
	return func(o *internal.ComputedOptions) { o.Name = name }
}

// NewComputed creates a memo whose value is fn(), recomputed lazily the
// first time it is read and thereafter only when a tracked dependency's
// value actually changed.
func NewComputed[T any](fn func() T, opts ...ComputedOption[T]) *Computed[T] {
	var o internal.ComputedOptions
	for _, opt := range opts {
		opt(&o)
	}
	rt := internal.GetRuntime()
	node := internal.NewComputed(rt, func(self *internal.Computation) any {
		return fn()
	}, o)
	return &Computed[T]{node: node}
}

// Get settles the memo if necessary and returns its value, tracking it
// against the current observer.
func (c *Computed[T]) Get() T {
	rt := internal.GetRuntime()
	return rt.ReadComputed(c.node).(T)
}

// AsyncComputed is a memo whose compute function may not have data yet.
// fn returning a non-nil error raises NotReady internally: the propagator
// (base spec §4.D/§7) keeps the memo's previous value, marks it pending
// instead of Clean, and links whatever sources fn did read before erroring
// so a later write to them retries fn from scratch.
type AsyncComputed[T any] struct {
	node *internal.Computation
}

// NewAsyncComputed creates an async memo. fn is called synchronously inside
// the pull, the same as any other Computed — "async" here describes the
// data source's readiness, not concurrency: a non-nil error models "the
// underlying resource has not resolved yet", not a goroutine handoff.
func NewAsyncComputed[T any](fn func() (T, error)) *AsyncComputed[T] {
	rt := internal.GetRuntime()
	node := internal.NewComputed(rt, func(self *internal.Computation) any {
		v, err := fn()
		if err != nil {
			NotReady(err)
		}
		return v
	}, internal.ComputedOptions{})
	return &AsyncComputed[T]{node: node}
}

// Get settles the memo if necessary and returns its value. If the most
// recent settle attempt raised NotReady, Get returns the last good value
// (the zero value if there never was one) alongside a NotReadyError.
func (a *AsyncComputed[T]) Get() (T, error) {
	rt := internal.GetRuntime()
	v := rt.ReadComputed(a.node)
	if a.node.Pending() {
		typed, _ := v.(T)
		return typed, &internal.NotReadyError{}
	}
	var zero T
	if v == nil {
		return zero, nil
	}
	return v.(T), nil
}

// IsPending reports whether the most recent settle attempt raised
// NotReady and hasn't yet been superseded by a successful one.
func (a *AsyncComputed[T]) IsPending() bool {
	return a.node.Pending()
}
