package internal

import "fmt"

// NotReadyError is raised by a compute function to signal "I depend on data
// that hasn't arrived yet" (base spec §7). It is special-cased by update: it
// does not settle the node to Clean and does not reach an error handler
// chain, it simply leaves the node Dirty so the next relevant write retries
// the compute.
type NotReadyError struct {
	Cause any
}

func (e *NotReadyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reactor: not ready: %v", e.Cause)
	}
	return "reactor: not ready"
}

// ComputeError describes an arbitrary panic raised from inside a compute or
// effect callback. dispatchError does not wrap panics in it: an owner's
// error-handler chain receives the raw panic value.
type ComputeError struct {
	Node  string // debug name of the computation that panicked, if set
	Cause any
}

func (e *ComputeError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("reactor: %s: %v", e.Node, e.Cause)
	}
	return fmt.Sprintf("reactor: compute error: %v", e.Cause)
}

func (e *ComputeError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NoOwnerError is returned by operations that require a current owner (e.g.
// SetContextValue) when none is in scope.
type NoOwnerError struct{}

func (e *NoOwnerError) Error() string {
	return "reactor: no owner in scope"
}

// ContextNotFoundError is returned by Context lookups that walk off the root
// of the owner tree without finding a value and have no default.
type ContextNotFoundError struct {
	Key any
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("reactor: context value not found for key %v", e.Key)
}
