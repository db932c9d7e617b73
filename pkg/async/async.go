package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for completion at most timeout.
// Returns the zero value and ErrTimeout if the deadline passes first.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes fn in a new goroutine and returns a Future for its result.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Pre-cancelled contexts never reach the callback
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Resolved returns a future that is already completed with v.
func Resolved[U any](v U) *Future[U] {
	f := &Future[U]{result: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Failed returns a future that is already completed with err.
func Failed[U any](err error) *Future[U] {
	f := &Future[U]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}
