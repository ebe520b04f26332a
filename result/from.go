package result

// From invokes fn and captures its outcome. A normal return becomes
// Ok(returned). A panic is recovered and becomes Err: the recovered value is
// routed through catch when one is supplied, and discarded otherwise,
// leaving the zero reason. A panic inside catch itself is not captured.
func From[E, T any](fn func() T, catch ...func(any) E) (res Result[T, E]) {
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
		res = Err[T](reason)
	}()
	res = Ok[E](fn())
	done = true
	return res
}
