package reactor

import "github.com/fluxgraph/reactor/internal"

// Effect is a handle to a running side-effecting leaf.
type Effect struct {
	node *internal.Computation
}

// EffectOption configures an Effect at construction time.
type EffectOption func(*internal.EffectOptions)

// WithEffectName attaches a debug name.
func WithEffectName(name string) EffectOption {
	return func(o *internal.EffectOptions) { o.Name = name }
}

// NewEffect creates a user-phase effect: fn runs tracked, after every
// dependency write that actually changes a value it read. fn may return a
// cleanup function, run immediately before the next invocation and once
// more when the effect is disposed. The effect is enqueued on construction
// and performs its first run on the next flush: outside a Batch that flush
// happens before NewEffect returns, inside a Batch it waits for the batch to
// close, and from inside a running flush (e.g. another effect's body) the
// new effect runs later in that same flush.
func NewEffect(fn func() func(), opts ...EffectOption) *Effect {
	return newEffect(internal.KindUserEffect, fn, opts...)
}

// NewRenderEffect is identical to NewEffect except it belongs to the
// render-effect phase, which the scheduler settles and runs before any
// user effect in the same flush (base spec §4.E phase ordering).
func NewRenderEffect(fn func() func(), opts ...EffectOption) *Effect {
	return newEffect(internal.KindRenderEffect, fn, opts...)
}

func newEffect(kind internal.Kind, fn func() func(), opts ...EffectOption) *Effect {
	var o internal.EffectOptions
	for _, opt := range opts {
		opt(&o)
	}
	rt := internal.GetRuntime()
	node := internal.NewEffect(rt, kind, func(self *internal.Computation) any {
		cleanup := fn()
		return cleanup
	}, nil, o)
	return &Effect{node: node}
}

// Dispose tears down the effect: its last cleanup runs, and it will never
// run again.
func (e *Effect) Dispose() {
	e.node.Dispose()
}

// CreateEffect is the two-phase form (base spec §6 createEffect): compute
// runs tracked and produces a value; effect then runs untracked with that
// value and the one from the previous settled run, returning a cleanup to
// run before the next invocation. effect only runs when compute's value
// actually changes (or on the first run), matching a computed's bailout
// behavior instead of running on every dependency recompute.
func CreateEffect[T any](compute func() T, effect func(value, prev T) func(), opts ...EffectOption) *Effect {
	var o internal.EffectOptions
	for _, opt := range opts {
		opt(&o)
	}
	rt := internal.GetRuntime()
	node := internal.NewEffect(rt, internal.KindUserEffect,
		func(self *internal.Computation) any { return compute() },
		func(value, prev any) func() {
			var p T
			if prev != nil {
				p = prev.(T)
			}
			return effect(value.(T), p)
		}, o)
	return &Effect{node: node}
}
