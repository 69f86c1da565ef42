package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/herald/internal/message"
	"github.com/dshills/herald/internal/publisher"
	"github.com/dshills/herald/internal/registry"
)

// Delivery records one observation made while running a scenario.
type Delivery struct {
	Kind    string // "subscription" or "wait"
	Slot    string
	Message string
	Args    message.Args
}

// Runner replays a scenario against a single global registry. Wait steps
// are awaited concurrently; Run returns once every wait has resolved or
// the context ends.
type Runner struct {
	reg  *registry.Global
	pubs map[string]*publisher.Publisher
	log  *slog.Logger

	mu         sync.Mutex
	deliveries []Delivery
}

// NewRunner creates a runner with a fresh global registry.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		reg:  registry.NewGlobal("scenario", registry.WithLogger(log)),
		pubs: make(map[string]*publisher.Publisher),
		log:  log,
	}
}

// Run executes the scenario's steps in order and returns the observed
// deliveries. Subscriptions and waits may precede the link step that
// claims their slot; the registry's placeholders buffer them.
func (r *Runner) Run(ctx context.Context, sc Scenario) ([]Delivery, error) {
	eg, ctx := errgroup.WithContext(ctx)

	for i, st := range sc.Steps {
		if err := r.step(ctx, eg, st); err != nil {
			return nil, fmt.Errorf("step %d (%s %s): %w", i, st.Action, st.Slot, err)
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out, nil
}

func (r *Runner) step(ctx context.Context, eg *errgroup.Group, st Step) error {
	switch st.Action {
	case ActionSubscribe:
		obs, err := r.reg.Get(message.Name(st.Slot))
		if err != nil {
			return err
		}
		slot, name := st.Slot, st.Message
		return obs.Subscribe(message.Name(name), func(args message.Args) {
			r.record(Delivery{Kind: "subscription", Slot: slot, Message: name, Args: args})
		})

	case ActionWait:
		obs, err := r.reg.Get(message.Name(st.Slot))
		if err != nil {
			return err
		}
		fut, err := obs.Wait(message.Name(st.Message))
		if err != nil {
			return err
		}
		slot, name := st.Slot, st.Message
		eg.Go(func() error {
			args, err := fut.Await(ctx)
			if err != nil {
				return fmt.Errorf("wait %s/%s: %w", slot, name, err)
			}
			r.record(Delivery{Kind: "wait", Slot: slot, Message: name, Args: args})
			return nil
		})
		return nil

	case ActionLink:
		if _, linked := r.pubs[st.Slot]; linked {
			return fmt.Errorf("slot already linked")
		}
		pub, err := publisher.New(
			publisher.WithGlobal(r.reg, message.Name(st.Slot)),
			publisher.WithLogger(r.log),
		)
		if err != nil {
			return err
		}
		r.pubs[st.Slot] = pub
		return nil

	case ActionFire:
		pub, linked := r.pubs[st.Slot]
		if !linked {
			return fmt.Errorf("slot not linked")
		}
		return pub.Fire(message.Name(st.Message), st.Args...)

	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

func (r *Runner) record(d Delivery) {
	r.mu.Lock()
	r.deliveries = append(r.deliveries, d)
	r.mu.Unlock()
	r.log.Debug("delivery", "kind", d.Kind, "slot", d.Slot, "message", d.Message, "args", d.Args)
}
