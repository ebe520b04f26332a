package async

import (
	"github.com/softwareventures/result/result"
)

// ResultFrom runs fn on its own goroutine and captures its outcome as a
// result.Result. The returned future always succeeds: a normal return
// settles it with Ok, a panic is recovered and settles it with Err, routing
// the recovered value through catch when one is supplied and discarding it
// otherwise. A panic inside catch itself rejects the future.
func ResultFrom[E, T any](fn func() T, catch ...func(any) E) *Future[result.Result[T, E]] {
	return ResultFromWith[E](nil, fn, catch...)
}

// ResultFromWith is ResultFrom gated by sem, bounding how many captures run
// concurrently. A nil sem applies no bound.
func ResultFromWith[E, T any](sem *Semaphore, fn func() T, catch ...func(any) E) *Future[result.Result[T, E]] {
	return newFuture(Job[result.Result[T, E]]{
		Do: func(resolve func(result.Result[T, E]), reject func(error)) {
			done := false
			defer func() {
				if done {
					return
				}
				caught := recover()
				var reason E
				if len(catch) > 0 && catch[0] != nil {
					reason = catch[0](caught)
				}
				resolve(result.Err[T](reason))
			}()
			value := fn()
			done = true
			resolve(result.Ok[E](value))
		},
	}, sem)
}

// Settle awaits an already-running future and wraps its outcome: success
// becomes Ok, failure becomes Err with the rejection reason routed through
// catch when one is supplied and discarded otherwise. The returned future
// always succeeds.
func Settle[E, T any](f *Future[T], catch ...func(error) E) *Future[result.Result[T, E]] {
	return NewFuture(Job[result.Result[T, E]]{
		Do: func(resolve func(result.Result[T, E]), reject func(error)) {
			value, err := f.Await()
			if !f.failed {
				resolve(result.Ok[E](value))
				return
			}
			var reason E
			if len(catch) > 0 && catch[0] != nil {
				reason = catch[0](err)
			}
			resolve(result.Err[T](reason))
		},
	})
}
