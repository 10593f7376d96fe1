package uthread

import "github.com/gammazero/deque"

// Sem is an opaque semaphore handle. It is valid only for the runtime that
// issued it and only until SemDestroy; the zero value is invalid.
type Sem struct {
	id uint32
}

// Valid reports whether the handle was issued by SemInit.
func (s Sem) Valid() bool { return s.id != 0 }

type semaphore struct {
	value   uint32
	waiters deque.Deque[ID]
}

// SemInit creates a counting semaphore with the given initial value and
// returns its handle. Values at or above SemValueMax are rejected; at most
// maxSems semaphores may be live at once.
func (r *Runtime) SemInit(value uint32) (Sem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.maybePreemptLocked()

	if value >= SemValueMax {
		return Sem{}, ErrBadSemValue
	}
	if len(r.sems) >= maxSems {
		return Sem{}, ErrTooManySems
	}
	r.nextSem++
	r.sems[r.nextSem] = &semaphore{value: value}
	return Sem{id: r.nextSem}, nil
}

// SemDestroy drops the semaphore record. Threads still waiting on it stay
// blocked; destroying a semaphore with waiters is an application error.
func (r *Runtime) SemDestroy(h Sem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sems[h.id]; !ok {
		return ErrNoSuchSem
	}
	delete(r.sems, h.id)
	return nil
}

// SemWait decrements the semaphore, suspending the calling thread in FIFO
// order behind earlier waiters while the counter is zero.
func (r *Runtime) SemWait(h Sem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.maybePreemptLocked()

	s, ok := r.sems[h.id]
	if !ok {
		return ErrNoSuchSem
	}
	if s.value > 0 {
		s.value--
		return nil
	}
	cur := &r.threads[r.current]
	s.waiters.PushBack(cur.id)
	cur.status = Blocked
	r.emit(EvSemWait, cur.id, int32(h.id))
	r.reschedule(cur)
	return nil
}

// SemPost releases the longest-waiting thread if one is queued; otherwise
// it increments the counter. Posting does not yield: the released thread
// runs when the scheduler next reaches it.
func (r *Runtime) SemPost(h Sem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.maybePreemptLocked()

	s, ok := r.sems[h.id]
	if !ok {
		return ErrNoSuchSem
	}
	if s.waiters.Len() > 0 {
		id := s.waiters.PopFront()
		r.threads[id].status = Ready
		r.emit(EvSemPost, id, int32(h.id))
		return nil
	}
	if s.value+1 >= SemValueMax {
		return ErrSemOverflow
	}
	s.value++
	r.emit(EvSemPost, r.current, int32(h.id))
	return nil
}
