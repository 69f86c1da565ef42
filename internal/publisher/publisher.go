package publisher

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dshills/herald/internal/message"
	"github.com/dshills/herald/internal/registry"
	"github.com/dshills/herald/internal/trigger"
)

// Linkage configuration errors. These indicate wiring mistakes and are
// returned synchronously from New, never deferred.
var (
	// ErrNilRegistry is returned when a linkage names a nil registry.
	ErrNilRegistry = errors.New("publisher: linkage registry cannot be nil")

	// ErrDuplicateOwner is returned when more than one owning linkage is
	// configured.
	ErrDuplicateOwner = errors.New("publisher: at most one owning linkage")
)

// Publisher originates named messages. It owns a trigger.Handle; the
// handle is written into the configured registries at construction, and
// consumers reach it through those registries as a trigger.Observable.
type Publisher struct {
	handle *trigger.Handle
	log    *slog.Logger
}

// ownerLinkage is the publisher's one owning registry slot.
type ownerLinkage struct {
	reg  *registry.Scoped
	name message.Name
}

// globalLinkage is an additional global registry slot.
type globalLinkage struct {
	reg  *registry.Global
	name message.Name
}

// config collects construction options before validation.
type config struct {
	owners  []ownerLinkage
	globals []globalLinkage
	log     *slog.Logger
}

// Option configures a Publisher.
type Option func(*config)

// WithOwner links the publisher into its owning scoped registry under
// name. At most one owning linkage may be configured.
func WithOwner(reg *registry.Scoped, name message.Name) Option {
	return func(c *config) {
		c.owners = append(c.owners, ownerLinkage{reg: reg, name: name})
	}
}

// WithGlobal additionally links the publisher into a global registry
// under name. May be repeated.
func WithGlobal(reg *registry.Global, name message.Name) Option {
	return func(c *config) {
		c.globals = append(c.globals, globalLinkage{reg: reg, name: name})
	}
}

// WithLogger sets the publisher's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs a publisher and immediately writes its handle into every
// configured registry. Malformed linkage (nil registry, invalid name,
// more than one owner) fails here, synchronously, with a descriptive
// error, before any registry is written.
func New(opts ...Option) (*Publisher, error) {
	c := config{log: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}

	if len(c.owners) > 1 {
		return nil, ErrDuplicateOwner
	}
	for _, o := range c.owners {
		if o.reg == nil {
			return nil, fmt.Errorf("owner linkage %q: %w", o.name, ErrNilRegistry)
		}
		if !o.name.Valid() {
			return nil, fmt.Errorf("owner linkage: %w", registry.ErrInvalidName)
		}
	}
	for _, g := range c.globals {
		if g.reg == nil {
			return nil, fmt.Errorf("global linkage %q: %w", g.name, ErrNilRegistry)
		}
		if !g.name.Valid() {
			return nil, fmt.Errorf("global linkage: %w", registry.ErrInvalidName)
		}
	}

	p := &Publisher{
		handle: trigger.NewHandle(),
		log:    c.log,
	}

	for _, o := range c.owners {
		if err := o.reg.Set(o.name, p.handle); err != nil {
			return nil, fmt.Errorf("owner linkage %q: %w", o.name, err)
		}
		p.log.Debug("publisher linked", "registry", "scoped", "name", o.name, "handle", p.handle.ID())
	}
	for _, g := range c.globals {
		if err := g.reg.Set(g.name, p.handle); err != nil {
			return nil, fmt.Errorf("global linkage %q: %w", g.name, err)
		}
		p.log.Debug("publisher linked", "registry", g.reg.Name(), "name", g.name, "handle", p.handle.ID())
	}
	return p, nil
}

// Handle returns the consumer-facing surface of the publisher.
func (p *Publisher) Handle() trigger.Observable {
	return p.handle
}

// Fire announces name with args to every observer of this publisher.
func (p *Publisher) Fire(name message.Name, args ...any) error {
	return p.handle.Fire(name, args...)
}

// Register writes the publisher's handle into a global registry under
// name, after construction. The same forwarding rules as construction
// time apply.
func (p *Publisher) Register(reg *registry.Global, name message.Name) error {
	if reg == nil {
		return ErrNilRegistry
	}
	if err := reg.Set(name, p.handle); err != nil {
		return err
	}
	p.log.Debug("publisher linked", "registry", reg.Name(), "name", name, "handle", p.handle.ID())
	return nil
}
