package trigger

import (
	"reflect"
	"sync"

	"github.com/dshills/herald/internal/message"
)

// Callback is a durable observer. It is invoked with the args of every
// fire of its subscribed name until unsubscribed.
type Callback func(message.Args)

// callbackKey returns the identity used to deduplicate subscriptions.
// Two references to the same function or method share a key; two distinct
// closures do not.
func callbackKey(cb Callback) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

// subscriber pairs a callback with its identity key.
type subscriber struct {
	key uintptr
	fn  Callback
}

// Registry owns the observer bookkeeping for exactly one publisher handle
// or placeholder: message name to ordered callback set, and message name
// to pending waiter set. It is safe for concurrent use.
//
// A registry seals when its owner finalizes. Every operation on a sealed
// registry returns ErrFinalized.
type Registry struct {
	mu      sync.Mutex
	subs    map[message.Name][]subscriber
	waiters map[message.Name][]*Future
	sealed  bool
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{
		subs:    make(map[message.Name][]subscriber),
		waiters: make(map[message.Name][]*Future),
	}
}

// Subscribe adds a durable callback for name. Re-subscribing the same
// callback is a no-op; the callback still receives one delivery per fire.
func (r *Registry) Subscribe(name message.Name, cb Callback) error {
	if !name.Valid() {
		return ErrInvalidName
	}
	if cb == nil {
		return ErrNilCallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrFinalized
	}
	return r.addLocked(name, subscriber{key: callbackKey(cb), fn: cb})
}

// addLocked inserts a subscriber preserving insertion order.
// Callers hold r.mu.
func (r *Registry) addLocked(name message.Name, s subscriber) error {
	for _, existing := range r.subs[name] {
		if existing.key == s.key {
			return nil // already subscribed
		}
	}
	r.subs[name] = append(r.subs[name], s)
	return nil
}

// Unsubscribe removes a callback for name. Removing a callback that was
// never subscribed is a no-op. Removing the last callback for a name
// deletes the name's set.
func (r *Registry) Unsubscribe(name message.Name, cb Callback) error {
	if !name.Valid() {
		return ErrInvalidName
	}
	if cb == nil {
		return ErrNilCallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrFinalized
	}

	key := callbackKey(cb)
	subs := r.subs[name]
	for i, s := range subs {
		if s.key == key {
			r.subs[name] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(r.subs[name]) == 0 {
		delete(r.subs, name)
	}
	return nil
}

// WaitNext creates a waiter for the next fire of name and returns its
// future. The future resolves with the args of the first fire strictly
// after this call; it never resolves if the name never fires.
func (r *Registry) WaitNext(name message.Name) (*Future, error) {
	if !name.Valid() {
		return nil, ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return nil, ErrFinalized
	}

	f := newFuture(name)
	r.waiters[name] = append(r.waiters[name], f)
	return f, nil
}

// Fire resolves and clears every pending waiter for name with the same
// args snapshot, then invokes every currently subscribed callback in
// insertion order. Waiters are cleared even when no callbacks exist.
// Firing a name with no observers is a no-op.
//
// Callbacks run outside the registry lock, so a callback may subscribe,
// unsubscribe, or fire again; the relative ordering of a reentrant fire
// is undefined.
func (r *Registry) Fire(name message.Name, args message.Args) error {
	if !name.Valid() {
		return ErrInvalidName
	}

	r.mu.Lock()
	if r.sealed {
		r.mu.Unlock()
		return ErrFinalized
	}

	waiters := r.waiters[name]
	delete(r.waiters, name)

	subs := r.subs[name]
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	r.mu.Unlock()

	for _, w := range waiters {
		w.resolve(args)
	}
	for _, s := range snapshot {
		s.fn(args)
	}
	return nil
}

// SubscriberCount returns the number of callbacks subscribed for name.
func (r *Registry) SubscriberCount(name message.Name) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[name])
}

// WaiterCount returns the number of pending waiters for name.
func (r *Registry) WaiterCount(name message.Name) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.waiters[name])
}

// Sealed reports whether the registry has been finalized.
func (r *Registry) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

// drain seals the registry and hands back its buffered state for
// forwarding. A second drain returns ErrFinalized.
func (r *Registry) drain() (map[message.Name][]subscriber, map[message.Name][]*Future, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return nil, nil, ErrFinalized
	}
	r.sealed = true

	subs := r.subs
	waiters := r.waiters
	r.subs = nil
	r.waiters = nil
	return subs, waiters, nil
}

// adopt merges forwarded state into this registry: durable subscribers
// are re-added (identity dedup still applies), pending waiters are
// transferred so the next fire of their name resolves them. Cancelled
// waiters are dropped.
func (r *Registry) adopt(subs map[message.Name][]subscriber, waiters map[message.Name][]*Future) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrFinalized
	}

	for name, entries := range subs {
		for _, s := range entries {
			if err := r.addLocked(name, s); err != nil {
				return err
			}
		}
	}
	for name, fs := range waiters {
		for _, f := range fs {
			if f.Resolved() {
				continue
			}
			r.waiters[name] = append(r.waiters[name], f)
		}
	}
	return nil
}
