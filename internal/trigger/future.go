package trigger

import (
	"context"
	"sync"

	"github.com/rs/xid"

	"github.com/dshills/herald/internal/message"
)

// Future is a single-resolution handle for the next fire of one message
// name. It resolves at most once: either with the args of that fire, or
// with ErrWaitCancelled if cancelled first. A Future for a message that
// never fires never resolves; callers who need a bound use the context
// passed to Await.
type Future struct {
	id   string
	name message.Name

	once sync.Once
	done chan struct{}
	args message.Args
	err  error
}

// newFuture creates an unresolved future for the given name.
func newFuture(name message.Name) *Future {
	return &Future{
		id:   xid.New().String(),
		name: name,
		done: make(chan struct{}),
	}
}

// ID returns the future's unique identifier, used for log correlation.
func (f *Future) ID() string {
	return f.id
}

// Name returns the message name the future is waiting on.
func (f *Future) Name() message.Name {
	return f.name
}

// resolve completes the future with the fired args.
// Calls after the first are no-ops.
func (f *Future) resolve(args message.Args) {
	f.once.Do(func() {
		f.args = args
		close(f.done)
	})
}

// Cancel resolves the future with ErrWaitCancelled. A cancelled future is
// skipped by fire and dropped when buffered waiters are forwarded.
// Cancelling an already-resolved future is a no-op.
func (f *Future) Cancel() {
	f.once.Do(func() {
		f.err = ErrWaitCancelled
		close(f.done)
	})
}

// Done returns a channel closed when the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or the context ends.
// It returns the fired args, ErrWaitCancelled, or the context's error.
func (f *Future) Await(ctx context.Context) (message.Args, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.args, f.err
	}
}

// Resolved reports whether the future has resolved (fired or cancelled).
func (f *Future) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
