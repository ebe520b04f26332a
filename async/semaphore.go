package async

// Semaphore is a counting semaphore used to bound how many future jobs run
// at once. A Semaphore may be chained under a parent; acquiring takes a
// ticket from the semaphore and every ancestor.
type Semaphore struct {
	parent *Semaphore
	ticket chan struct{}
}

// NewSemaphore returns a semaphore with the given number of tickets.
func NewSemaphore(available uint64) *Semaphore {
	s := &Semaphore{ticket: make(chan struct{}, available)}
	for i := uint64(0); i < available; i++ {
		s.ticket <- struct{}{}
	}
	return s
}

// Then chains child under s and returns s.
func (s *Semaphore) Then(child *Semaphore) *Semaphore {
	if child != nil {
		child.parent = s
	}
	return s
}

// Acquire takes one ticket from s and each of its ancestors, blocking until
// all are available.
func (s *Semaphore) Acquire() {
	for ; s != nil; s = s.parent {
		<-s.ticket
	}
}

// Release returns one ticket to s and each of its ancestors.
func (s *Semaphore) Release() {
	for ; s != nil; s = s.parent {
		s.ticket <- struct{}{}
	}
}
