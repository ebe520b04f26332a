package async

import "sync"

// Once memoizes a single-flight job: the first call to Do starts it, every
// call returns the same future.
type Once[T any] struct {
	Job       Job[T]
	Semaphore *Semaphore

	once   sync.Once
	future *Future[T]
}

// Do returns the future for the job, starting it on the first call.
func (o *Once[T]) Do() *Future[T] {
	o.once.Do(func() {
		o.future = newFuture(o.Job, o.Semaphore)
	})
	return o.future
}
