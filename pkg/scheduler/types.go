package scheduler

import (
	"context"
)

// Work is a unit of work run by a Scheduler worker.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future delivers exactly one Result.
type Future[T any] struct {
	input  chan Result[T]
	cancel context.CancelFunc
}

func newFuture[T any](input chan Result[T], cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() <-chan Result[T] {
	return f.input
}

// Stop cancels the context handed to the work.
func (f *Future[T]) Stop() {
	f.cancel()
}

// Wait blocks until the result arrives or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) Result[T] {
	select {
	case r := <-f.input:
		return r
	case <-ctx.Done():
		f.cancel()
		return Result[T]{Err: ctx.Err()}
	}
}
