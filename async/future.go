// Package async provides a minimal deferred value, Future, and operations
// that capture the outcome of asynchronous work as a result.Result.
package async

import (
	"errors"
	"fmt"
	"sync"
)

// Job is the work a Future runs: Do must call resolve or reject exactly
// once. A panic inside Do rejects the future with the recovered value.
type Job[T any] struct {
	Do func(resolve func(T), reject func(error))
}

// Future is a deferred value that settles exactly once: it either succeeds
// with a value of type T or fails with an error. All methods are safe for
// concurrent use.
type Future[T any] struct {
	value    T
	reason   error
	failed   bool
	settled  chan struct{}
	settleIt sync.Once
	sem      *Semaphore
	job      Job[T]
}

// NewFuture starts job on its own goroutine and returns the Future it will
// settle.
func NewFuture[T any](job Job[T]) *Future[T] {
	return newFuture(job, nil)
}

// NewFutureWithSemaphore is NewFuture with sem acquired before the job runs
// and released when the future settles.
func NewFutureWithSemaphore[T any](job Job[T], sem *Semaphore) *Future[T] {
	return newFuture(job, sem)
}

func newFuture[T any](job Job[T], sem *Semaphore) *Future[T] {
	f := &Future[T]{settled: make(chan struct{}), sem: sem, job: job}
	f.start()
	return f
}

func (f *Future[T]) settle(assign func()) {
	f.settleIt.Do(func() {
		assign()
		if f.sem != nil {
			f.sem.Release()
		}
		close(f.settled)
	})
}

func (f *Future[T]) succeed(value T) {
	f.settle(func() { f.value = value })
}

func (f *Future[T]) fail(reason error) {
	f.settle(func() {
		f.reason = reason
		f.failed = true
	})
}

func (f *Future[T]) start() {
	if f.job.Do == nil {
		return
	}
	go func() {
		ok := false
		defer func() {
			if ok {
				return
			}
			switch e := recover().(type) {
			case nil:
				f.fail(errors.New("async: job panicked"))
			case error:
				f.fail(e)
			default:
				f.fail(fmt.Errorf("%v", e))
			}
		}()
		if f.sem != nil {
			f.sem.Acquire()
		}
		f.job.Do(f.succeed, f.fail)
		ok = true
	}()
}

// Await blocks until the future settles and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.settled
	if f.failed {
		var zero T
		return zero, f.reason
	}
	return f.value, nil
}

// TryAwait reports whether the future has settled, without blocking.
func (f *Future[T]) TryAwait() bool {
	select {
	case <-f.settled:
		return true
	default:
		return false
	}
}

// AwaitAll blocks until every future in all has settled.
func AwaitAll[T any](all []*Future[T]) {
	for _, f := range all {
		<-f.settled
	}
}

// Resolved returns an already-succeeded future holding value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{settled: make(chan struct{})}
	f.succeed(value)
	return f
}

// Failed returns an already-failed future holding reason.
func Failed[T any](reason error) *Future[T] {
	f := &Future[T]{settled: make(chan struct{})}
	f.fail(reason)
	return f
}
