package reactor

import "github.com/fluxgraph/reactor/internal"

// Signal is a mutable reactive leaf holding a value of type T.
type Signal[T any] struct {
	node *internal.Computation
}

// SignalOption configures a Signal at construction time.
type SignalOption[T any] func(*internal.SignalOptions)

// WithEquals overrides the default == comparison used to decide whether a
// write actually changed the value (and should therefore propagate).
func WithEquals[T any](equals func(a, b T) bool) SignalOption[T] {
	return func(o *internal.SignalOptions) {
		o.Equals = func(a, b any) bool { return equals(a.(T), b.(T)) }
	}
}

// WithName attaches a debug name, surfaced in the SetDebug warning about
// writes from inside an effect.
func WithName[T any](name string) SignalOption[T] {
	return func(o *internal.SignalOptions) { o.Name = name }
}

// WithUnobserved registers a callback fired once, the instant this signal's
// last observer is removed.
func WithUnobserved[T any](fn func()) SignalOption[T] {
	return func(o *internal.SignalOptions) { o.Unobserved = fn }
}

// NewSignal creates a signal initialized to v.
func NewSignal[T any](v T, opts ...SignalOption[T]) *Signal[T] {
	var o internal.SignalOptions
	for _, opt := range opts {
		opt(&o)
	}
	rt := internal.GetRuntime()
	return &Signal[T]{node: internal.NewSignal(rt, v, o)}
}

// Get reads the current value, tracking it against whatever computed or
// effect is currently evaluating.
func (s *Signal[T]) Get() T {
	rt := internal.GetRuntime()
	return rt.Read(s.node).(T)
}

// Set stores v. Writing an equal value is a no-op; otherwise every
// dependent computed/effect is scheduled to re-settle.
func (s *Signal[T]) Set(v T) {
	rt := internal.GetRuntime()
	rt.Write(s.node, v)
}

// Update reads the current value, applies fn, and writes the result back —
// a convenience for the common "derive next from prev" pattern. fn runs
// outside of dependency tracking: neither the read of the current value nor
// anything fn reads becomes a dependency of the caller.
func (s *Signal[T]) Update(fn func(prev T) T) {
	rt := internal.GetRuntime()
	var next T
	rt.Untrack(func() { next = fn(rt.Read(s.node).(T)) })
	s.Set(next)
}
