// Package result provides a generic success-or-failure type and the
// combinators for constructing, inspecting, transforming and unwrapping it.
//
// A Result[T, E] is always exactly one of two variants: Ok carrying a value
// of type T, or Err carrying a reason of type E. Values are immutable after
// construction and compare structurally when T and E are comparable.
//
// Type-changing transforms (MapOk, MapErr, Bind) are package functions
// because Go methods cannot introduce type parameters. Each transform and
// unwrap has a curried "Fn" counterpart returning a one-argument closure for
// left-to-right pipeline composition; see Pipe.
package result

import (
	"errors"
	"fmt"
)

// Result holds either a success value of type T or a failure reason of type
// E, never both. The zero value is Err of the zero reason.
type Result[T, E any] struct {
	value  T
	reason E
	ok     bool
}

// Ok returns a success Result carrying value. The reason type parameter
// comes first so it can be named while the value type is inferred:
//
//	result.Ok[error](42) // Result[int, error]
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a failure Result carrying reason.
func Err[T, E any](reason E) Result[T, E] {
	return Result[T, E]{reason: reason}
}

// Of bridges Go's (value, error) convention: a nil error yields Ok(value),
// anything else yields Err(err).
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// IsOk reports whether r is the Ok variant.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is the Err variant.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// String renders Ok variants as Ok(<value>). An Err variant renders as the
// reason's own string form when it has one (string, error or fmt.Stringer);
// a nil-equivalent reason, or one without a string form, renders as the
// literal "Err".
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return reasonString(any(r.reason))
}

func reasonString(reason any) string {
	switch v := reason.(type) {
	case nil:
		return "Err"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return "Err"
	}
}

// ErrExpectedErr identifies a wrong-variant unwrap: UnwrapErr was called on
// an Ok result. It marks a programmer error, not a represented failure.
var ErrExpectedErr = errors.New("result: expected Err, got Ok")

// FailureError adapts an Err reason to Go's error interface so a failure can
// travel through ordinary error plumbing and panic recovery.
type FailureError[E any] struct {
	Reason E
}

func (e *FailureError[E]) Error() string {
	return reasonString(any(e.Reason))
}

// AsError returns nil for Ok results and a *FailureError carrying the reason
// for Err results.
func (r Result[T, E]) AsError() error {
	if r.ok {
		return nil
	}
	return &FailureError[E]{Reason: r.reason}
}
