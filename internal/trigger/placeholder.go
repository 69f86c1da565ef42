package trigger

import (
	"github.com/rs/xid"

	"github.com/dshills/herald/internal/message"
)

// Placeholder stands in for a publisher that has not registered yet. It
// exposes the same observable surface as a Handle, buffering every
// subscription and waiter in its own registry, but has no Fire: nothing
// can be announced through a name that nobody owns.
//
// When the real publisher claims the name, the owning registry slot
// calls Finalize exactly once; the buffers replay onto the real handle
// and the placeholder is dead.
type Placeholder struct {
	id  string
	reg *Registry
}

// NewPlaceholder creates an empty placeholder.
func NewPlaceholder() *Placeholder {
	return &Placeholder{
		id:  xid.New().String(),
		reg: NewRegistry(),
	}
}

// ID returns the placeholder's unique identifier.
func (p *Placeholder) ID() string {
	return p.id
}

// Wait returns a future that resolves with the real publisher's first
// fire of name after it registers and fires.
func (p *Placeholder) Wait(name message.Name) (*Future, error) {
	return p.reg.WaitNext(name)
}

// Subscribe buffers a durable callback for name until the real publisher
// registers; the callback is never invoked before then.
func (p *Placeholder) Subscribe(name message.Name, cb Callback) error {
	return p.reg.Subscribe(name, cb)
}

// Unsubscribe removes a buffered callback for name.
func (p *Placeholder) Unsubscribe(name message.Name, cb Callback) error {
	return p.reg.Unsubscribe(name, cb)
}

// Finalize replays every buffered subscription and pending waiter onto
// real, then seals the placeholder. A second call returns ErrFinalized.
func (p *Placeholder) Finalize(real *Handle) error {
	if real == nil {
		return ErrNilTarget
	}
	return forward(p.reg, real)
}
