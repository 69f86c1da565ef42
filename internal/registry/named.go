package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dshills/herald/internal/message"
	"github.com/dshills/herald/internal/trigger"
)

// Sentinel errors for named registries.
var (
	// ErrInvalidName is returned when an empty name is used as a slot key.
	ErrInvalidName = errors.New("registry: invalid message name")

	// ErrNilHandle is returned when Set is given a nil handle.
	ErrNilHandle = errors.New("registry: handle cannot be nil")
)

// Named maps names to slot occupants. A slot holds at most one occupant:
// a Placeholder, materialized lazily on the first read of an unclaimed
// name, or the real publisher Handle once one registers. Slots are
// replaced, never removed.
type Named struct {
	mu    sync.Mutex
	slots map[message.Name]trigger.Occupant
	label string
	log   *slog.Logger
}

// Option configures a named registry.
type Option func(*Named)

// WithLogger sets the logger used for slot bookkeeping events.
func WithLogger(log *slog.Logger) Option {
	return func(n *Named) {
		if log != nil {
			n.log = log
		}
	}
}

// newNamed creates an empty registry with the given log label.
func newNamed(label string, opts ...Option) *Named {
	n := &Named{
		slots: make(map[message.Name]trigger.Occupant),
		label: label,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Get returns whatever occupies the slot for name, materializing a
// Placeholder if the slot is empty. Repeated reads of an unclaimed name
// return the same placeholder.
func (n *Named) Get(name message.Name) (trigger.Observable, error) {
	if !name.Valid() {
		return nil, ErrInvalidName
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if occ, ok := n.slots[name]; ok {
		return occ, nil
	}

	ph := trigger.NewPlaceholder()
	n.slots[name] = ph
	n.log.Debug("placeholder materialized", "registry", n.label, "name", name, "id", ph.ID())
	return ph, nil
}

// Set claims the slot for name with a real publisher handle.
//
// An empty slot simply stores the handle. A slot holding a Placeholder
// forwards the placeholder's buffers onto the handle first, so every
// observer registered before the publisher existed is serviced. A slot
// already holding a real handle (name reuse) forwards the previous
// occupant's buffers the same way; the previous handle seals, so stale
// references to it fail loudly rather than deliver into a dead registry.
// Setting the handle that already occupies the slot is a no-op.
func (n *Named) Set(name message.Name, h *trigger.Handle) error {
	if !name.Valid() {
		return ErrInvalidName
	}
	if h == nil {
		return ErrNilHandle
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	prev, ok := n.slots[name]
	if !ok {
		n.slots[name] = h
		return nil
	}

	if prevHandle, isHandle := prev.(*trigger.Handle); isHandle && prevHandle == h {
		return nil // handle must not finalize into itself
	}

	if err := prev.Finalize(h); err != nil {
		return fmt.Errorf("registry: forwarding slot %q: %w", name, err)
	}
	n.slots[name] = h
	n.log.Debug("slot forwarded", "registry", n.label, "name", name, "handle", h.ID())
	return nil
}

// Len returns the number of occupied slots, placeholders included.
func (n *Named) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.slots)
}

// Claimed reports whether the slot for name holds a real publisher
// handle rather than a placeholder or nothing.
func (n *Named) Claimed(name message.Name) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, isHandle := n.slots[name].(*trigger.Handle)
	return isHandle
}
