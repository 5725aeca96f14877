package namer

import (
	"context"
	"time"
)

// Future is the pending result of a call started with Async.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Await blocks until the call finishes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout is like Await but gives up after timeout with ErrTimeout.
// The call keeps running and can still be awaited later.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the call has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn in its own goroutine and returns immediately. It turns any
// blocking Composer method into its awaitable form:
//
//	f := namer.Async(ctx, gen.GenerateFullNames, namer.WithCount(3))
//	names, err := f.Await()
func Async[T any](ctx context.Context, fn func(context.Context, ...Option) (T, error), opts ...Option) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, opts...)
	}()

	return f
}
