package trigger

import "errors"

// Sentinel errors for trigger registries and handles.
var (
	// ErrFinalized is returned by any operation on a registry that has
	// already forwarded its state, including a second finalize. It always
	// indicates a stale reference or a wiring mistake.
	ErrFinalized = errors.New("trigger: already finalized")

	// ErrInvalidName is returned when an empty message name is supplied.
	ErrInvalidName = errors.New("trigger: invalid message name")

	// ErrNilCallback is returned when a nil callback is supplied.
	ErrNilCallback = errors.New("trigger: callback cannot be nil")

	// ErrNilTarget is returned when finalize is given a nil target handle.
	ErrNilTarget = errors.New("trigger: finalize target cannot be nil")

	// ErrWaitCancelled resolves a Future whose waiter was cancelled before
	// the message fired.
	ErrWaitCancelled = errors.New("trigger: wait cancelled")
)
