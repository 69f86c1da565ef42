package registry

import (
	"github.com/dshills/herald/internal/message"
	"github.com/dshills/herald/internal/trigger"
)

// Scoped is a named registry created together with its owning consumer.
// It routes the names one consumer cares about; unrelated parts of the
// system never see it.
type Scoped struct {
	*Named
}

// NewScoped creates an empty scoped registry.
func NewScoped(opts ...Option) *Scoped {
	return &Scoped{Named: newNamed("scoped", opts...)}
}

// NewScopedWith creates a scoped registry with one slot claimed at
// construction. This is the one-shot constructor-time binding used when
// the publisher already exists as its consumer is built.
func NewScopedWith(name message.Name, h *trigger.Handle, opts ...Option) (*Scoped, error) {
	s := NewScoped(opts...)
	if err := s.Set(name, h); err != nil {
		return nil, err
	}
	return s, nil
}
