package result

import "fmt"

// UnwrapOk returns the success value. If r is Err it panics with a
// *FailureError carrying the reason, propagating the failure.
func (r Result[T, E]) UnwrapOk() T {
	if !r.ok {
		panic(&FailureError[E]{Reason: r.reason})
	}
	return r.value
}

// UnwrapErr returns the failure reason. If r is Ok it panics with an error
// wrapping ErrExpectedErr: asking for a reason that does not exist is a bug
// in the caller, not a failure to propagate.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Errorf("%w: Ok(%v)", ErrExpectedErr, r.value))
	}
	return r.reason
}

// UnwrapOkOr returns the success value, or def when r is Err.
func (r Result[T, E]) UnwrapOkOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOkOrElse returns the success value, or fn applied to the reason when
// r is Err. fn is only invoked on the Err path.
func (r Result[T, E]) UnwrapOkOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.reason)
}

// UnwrapErrOr returns the failure reason, or def when r is Ok.
func (r Result[T, E]) UnwrapErrOr(def E) E {
	if r.ok {
		return def
	}
	return r.reason
}

// UnwrapErrOrElse returns the failure reason, or fn applied to the success
// value when r is Ok.
func (r Result[T, E]) UnwrapErrOrElse(fn func(T) E) E {
	if r.ok {
		return fn(r.value)
	}
	return r.reason
}

// UnwrapOkOrFn is the curried form of UnwrapOkOr.
func UnwrapOkOrFn[E, T any](def T) func(Result[T, E]) T {
	return func(r Result[T, E]) T {
		return r.UnwrapOkOr(def)
	}
}

// UnwrapOkOrElseFn is the curried form of UnwrapOkOrElse.
func UnwrapOkOrElseFn[T, E any](fn func(E) T) func(Result[T, E]) T {
	return func(r Result[T, E]) T {
		return r.UnwrapOkOrElse(fn)
	}
}

// UnwrapErrOrFn is the curried form of UnwrapErrOr.
func UnwrapErrOrFn[T, E any](def E) func(Result[T, E]) E {
	return func(r Result[T, E]) E {
		return r.UnwrapErrOr(def)
	}
}

// UnwrapErrOrElseFn is the curried form of UnwrapErrOrElse.
func UnwrapErrOrElseFn[T, E any](fn func(T) E) func(Result[T, E]) E {
	return func(r Result[T, E]) E {
		return r.UnwrapErrOrElse(fn)
	}
}
