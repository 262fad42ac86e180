// Package queue runs tasks one at a time in submission order.
//
// A pad's mutations (stroke commits, undo, redo, clear, recover) must apply
// in the order they were requested even when some of them wait on image
// decoding. Routing them all through one Serial worker gives that order
// without explicit locking in the callers.
package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when submitting to a closed queue.
var ErrClosed = errors.New("queue: closed")

// defaultDepth is the task buffer used when NewSerial is given depth <= 0.
const defaultDepth = 64

// Serial executes submitted tasks on a single goroutine, first in first out.
//
// Thread safety: Serial is safe for concurrent use. Tasks must not submit
// to their own queue with Do, which would wait on itself.
type Serial struct {
	// tasks is the FIFO of pending work.
	tasks chan func()

	// mu guards sends on tasks against Close closing it.
	mu sync.RWMutex

	// wg waits for the worker to finish.
	wg sync.WaitGroup

	// running indicates whether the queue is accepting work.
	running atomic.Bool

	// pending counts submitted tasks that have not finished.
	pending atomic.Int64
}

// NewSerial starts a queue whose buffer holds depth tasks before Go blocks.
// If depth is 0 or negative a default is used.
func NewSerial(depth int) *Serial {
	if depth <= 0 {
		depth = defaultDepth
	}
	q := &Serial{tasks: make(chan func(), depth)}
	q.running.Store(true)

	q.wg.Add(1)
	go q.worker()
	return q
}

func (q *Serial) worker() {
	defer q.wg.Done()
	for fn := range q.tasks {
		fn()
		q.pending.Add(-1)
	}
}

// Go enqueues fn without waiting for it to run. It blocks only while the
// buffer is full.
func (q *Serial) Go(fn func()) error {
	if fn == nil {
		return nil
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	if !q.running.Load() {
		return ErrClosed
	}
	q.pending.Add(1)
	q.tasks <- fn
	return nil
}

// Submit enqueues fn and returns at once. The channel receives fn's
// result after it runs, or the context error if ctx is done before fn
// starts. Tasks submitted from one goroutine run in submission order
// together with those passed to Go.
func (q *Serial) Submit(ctx context.Context, fn func() error) (<-chan error, error) {
	errc := make(chan error, 1)
	err := q.Go(func() {
		if err := ctx.Err(); err != nil {
			errc <- err
			return
		}
		errc <- fn()
	})
	if err != nil {
		return nil, err
	}
	return errc, nil
}

// Do enqueues fn and waits for its result. If ctx is done before fn
// starts, fn is skipped and the context error returned. A task that has
// already started always runs to completion; Do may then return the
// context error before it finishes.
func (q *Serial) Do(ctx context.Context, fn func() error) error {
	errc, err := q.Submit(ctx, fn)
	if err != nil {
		return err
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until every task submitted before the call has run.
func (q *Serial) Wait(ctx context.Context) error {
	return q.Do(ctx, func() error { return nil })
}

// Close stops accepting work, runs everything already queued and stops
// the worker. Close is safe to call multiple times.
func (q *Serial) Close() {
	if !q.running.CompareAndSwap(true, false) {
		return
	}
	// Wait for in-flight senders before closing the channel.
	q.mu.Lock()
	close(q.tasks)
	q.mu.Unlock()

	q.wg.Wait()
}

// IsRunning reports whether the queue still accepts work.
func (q *Serial) IsRunning() bool {
	return q.running.Load()
}

// Pending returns the number of submitted tasks that have not finished.
func (q *Serial) Pending() int {
	return int(q.pending.Load())
}
