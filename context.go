package reactor

import "github.com/fluxgraph/reactor/internal"

// Context is a typed channel for passing a value down the owner tree
// without threading it through every function signature. A Context reads
// its default value anywhere it was never Set, and a descendant owner's Set
// call is only visible within that owner's subtree.
type Context[T any] struct {
	key    *int
	def    T
	hasDef bool
}

// NewContext creates a Context with no default: Value returns the zero
// value and a ContextNotFoundError if read where it was never Set.
func NewContext[T any]() *Context[T] {
	return &Context[T]{key: new(int)}
}

// NewContextWithDefault creates a Context that falls back to def wherever
// it was never Set.
func NewContextWithDefault[T any](def T) *Context[T] {
	return &Context[T]{key: new(int), def: def, hasDef: true}
}

// Set stores v for c on the current owner; it is visible to this owner and
// every descendant, but not to the owner's own ancestors or siblings.
func (c *Context[T]) Set(v T) error {
	rt := internal.GetRuntime()
	return rt.SetContextValue(c.key, v)
}

// Value reads c by walking up from the current owner. Outside of any owner
// that Set it, it returns the Context's default (or the zero value plus an
// error if none was given).
func (c *Context[T]) Value() (T, error) {
	rt := internal.GetRuntime()
	v, err := rt.ContextValue(c.key, c.def, c.hasDef)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// HasContext reports whether some ancestor owner (including the current
// one) actually called Set on c — unlike Value, it does not count falling
// back to a default as "having" a value.
func (c *Context[T]) HasContext() bool {
	rt := internal.GetRuntime()
	cur := rt.CurrentOwner()
	if cur == nil {
		return false
	}
	_, ok := cur.LookupContext(c.key)
	return ok
}
