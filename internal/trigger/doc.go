// Package trigger implements the per-publisher observer bookkeeping and
// the deferred-binding forwarding protocol.
//
// # Components
//
// Registry owns two tables for one publisher: message name to ordered
// durable callbacks, and message name to pending one-shot waiters. Fire
// resolves and clears the waiters first (all with the same args
// snapshot), then invokes the callbacks in insertion order.
//
// Handle wraps a Registry as the surface one publisher owns. Consumers
// see it through the Observable interface (Wait, Subscribe, Unsubscribe);
// Fire stays with the owner.
//
// Placeholder is the stand-in used when a name is read from a named
// registry before any publisher claims it. It buffers observers in its
// own Registry and replays them onto the real Handle on Finalize.
//
// # Forwarding
//
// Finalize is one-shot. Buffered durable callbacks are re-subscribed on
// the target, so they observe every future fire. Pending waiters are
// transferred into the target's waiter set: the target's next fire of
// their name resolves them, giving the single relay hop the protocol
// requires without a relay goroutine. Cancelled waiters are dropped in
// transit.
//
// Once finalized a registry is sealed; any further Subscribe,
// Unsubscribe, Wait, Fire, or Finalize through it returns ErrFinalized.
// A sealed registry means the caller is holding a stale reference.
package trigger
