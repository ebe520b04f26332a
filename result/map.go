package result

// MapOk transforms the success value with fn. An Err input passes through
// with its reason unchanged and fn is never invoked.
func MapOk[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.reason)
	}
	return Ok[E](fn(r.value))
}

// MapErr transforms the failure reason with fn. An Ok input passes through
// with its value unchanged and fn is never invoked.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](fn(r.reason))
}

// Bind chains a Result-producing computation onto the success value. An Err
// input short-circuits: its reason passes through unchanged and fn is never
// invoked.
func Bind[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.reason)
	}
	return fn(r.value)
}

// MapOkFn is the curried form of MapOk. The reason type parameter comes
// first so it can be named while the transform's types are inferred.
func MapOkFn[E, T, U any](fn func(T) U) func(Result[T, E]) Result[U, E] {
	return func(r Result[T, E]) Result[U, E] {
		return MapOk(r, fn)
	}
}

// MapErrFn is the curried form of MapErr.
func MapErrFn[T, E, F any](fn func(E) F) func(Result[T, E]) Result[T, F] {
	return func(r Result[T, E]) Result[T, F] {
		return MapErr(r, fn)
	}
}

// BindFn is the curried form of Bind.
func BindFn[T, U, E any](fn func(T) Result[U, E]) func(Result[T, E]) Result[U, E] {
	return func(r Result[T, E]) Result[U, E] {
		return Bind(r, fn)
	}
}

// Pipe applies steps to r from left to right. Steps are typically built from
// the curried Fn combinators.
func Pipe[T, E any](r Result[T, E], steps ...func(Result[T, E]) Result[T, E]) Result[T, E] {
	for _, step := range steps {
		r = step(r)
	}
	return r
}
