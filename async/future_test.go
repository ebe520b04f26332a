package async_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/softwareventures/result/async"
	"github.com/stretchr/testify/require"
)

func TestFutureResolves(t *testing.T) {
	f := async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
		resolve(7)
	}})
	v, err := f.Await()
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFutureRejects(t *testing.T) {
	cause := errors.New("boom")
	f := async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
		reject(cause)
	}})
	_, err := f.Await()
	require.Same(t, cause, err)
}

func TestFuturePanicBecomesFailure(t *testing.T) {
	f := async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
		panic("boom")
	}})
	_, err := f.Await()
	require.EqualError(t, err, "boom")

	cause := errors.New("typed")
	f = async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
		panic(cause)
	}})
	_, err = f.Await()
	require.Same(t, cause, err)
}

func TestFutureSettlesOnce(t *testing.T) {
	f := async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
		resolve(1)
		resolve(2)
		reject(errors.New("late"))
	}})
	v, err := f.Await()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestTryAwait(t *testing.T) {
	release := make(chan struct{})
	f := async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
		<-release
		resolve(1)
	}})
	require.False(t, f.TryAwait())
	close(release)
	_, err := f.Await()
	require.NoError(t, err)
	require.True(t, f.TryAwait())
}

func TestResolvedAndFailed(t *testing.T) {
	v, err := async.Resolved("done").Await()
	require.NoError(t, err)
	require.Equal(t, "done", v)

	cause := errors.New("boom")
	_, err = async.Failed[string](cause).Await()
	require.Same(t, cause, err)
}

func TestAwaitAll(t *testing.T) {
	var settledCount atomic.Int32
	var all []*async.Future[int]
	for i := 0; i < 8; i++ {
		i := i
		all = append(all, async.NewFuture(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
			time.Sleep(time.Duration(i) * time.Millisecond)
			settledCount.Add(1)
			resolve(i)
		}}))
	}
	async.AwaitAll(all)
	require.Equal(t, int32(8), settledCount.Load())
}

func TestSemaphoreBoundsFutureJobs(t *testing.T) {
	sem := async.NewSemaphore(2)
	var running, peak atomic.Int32
	var all []*async.Future[int]
	for i := 0; i < 8; i++ {
		all = append(all, async.NewFutureWithSemaphore(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			resolve(0)
		}}, sem))
	}
	async.AwaitAll(all)
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestChainedSemaphore(t *testing.T) {
	parent := async.NewSemaphore(1)
	child := async.NewSemaphore(4)
	parent.Then(child)

	var running, peak atomic.Int32
	var all []*async.Future[int]
	for i := 0; i < 6; i++ {
		all = append(all, async.NewFutureWithSemaphore(async.Job[int]{Do: func(resolve func(int), reject func(error)) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			resolve(0)
		}}, child)) // parent's single ticket is the effective bound
	}
	async.AwaitAll(all)
	require.LessOrEqual(t, peak.Load(), int32(1))
}
