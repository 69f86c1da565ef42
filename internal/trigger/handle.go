package trigger

import (
	"github.com/rs/xid"

	"github.com/dshills/herald/internal/message"
)

// Observable is the consumer-facing surface of a publisher. Consumers
// obtained an Observable from a named registry; only the publisher that
// owns the underlying Handle can fire.
type Observable interface {
	// Wait returns a future resolving with the args of the next fire of
	// name after this call.
	Wait(name message.Name) (*Future, error)

	// Subscribe registers a durable callback for name.
	Subscribe(name message.Name, cb Callback) error

	// Unsubscribe removes a previously subscribed callback for name.
	Unsubscribe(name message.Name, cb Callback) error
}

// Occupant is what a named registry slot holds: an observable that can
// forward its buffered state onto a real handle exactly once. Both Handle
// and Placeholder satisfy it.
type Occupant interface {
	Observable

	// Finalize forwards all buffered state onto target and seals the
	// occupant. A second call returns ErrFinalized.
	Finalize(target *Handle) error
}

// Handle is the long-lived trigger surface owned by exactly one
// publisher. Wait, Subscribe, and Unsubscribe are for consumers; Fire is
// reserved for the owner, which keeps the *Handle private and hands out
// the Observable interface.
type Handle struct {
	id  string
	reg *Registry
}

// NewHandle creates a handle with a fresh registry.
func NewHandle() *Handle {
	return &Handle{
		id:  xid.New().String(),
		reg: NewRegistry(),
	}
}

// ID returns the handle's unique identifier.
func (h *Handle) ID() string {
	return h.id
}

// Wait returns a future for the next fire of name.
func (h *Handle) Wait(name message.Name) (*Future, error) {
	return h.reg.WaitNext(name)
}

// Subscribe registers a durable callback for name.
func (h *Handle) Subscribe(name message.Name, cb Callback) error {
	return h.reg.Subscribe(name, cb)
}

// Unsubscribe removes a callback for name.
func (h *Handle) Unsubscribe(name message.Name, cb Callback) error {
	return h.reg.Unsubscribe(name, cb)
}

// Fire announces name with args to every pending waiter and subscribed
// callback. Owner-side operation.
func (h *Handle) Fire(name message.Name, args ...any) error {
	return h.reg.Fire(name, message.Args(args))
}

// Finalize forwards this handle's buffered state onto target and seals
// this handle. Durable callbacks are re-subscribed on target; pending
// waiters transfer and resolve with target's next fire of their name.
// After finalize every operation through this handle returns
// ErrFinalized.
func (h *Handle) Finalize(target *Handle) error {
	if target == nil {
		return ErrNilTarget
	}
	return forward(h.reg, target)
}

// forward drains src (sealing it) and merges the buffers into dst.
func forward(src *Registry, dst *Handle) error {
	subs, waiters, err := src.drain()
	if err != nil {
		return err
	}
	return dst.reg.adopt(subs, waiters)
}
