package uthread

import "runtime"

func goexit() {
	runtime.Goexit()
}

// Create starts a new thread running fn(arg) and returns its ID. The
// thread begins in Ready state and first runs when the scheduler selects
// it. Create fails with ErrTooManyThreads when the table is full.
func (r *Runtime) Create(fn Func, arg any) (ID, error) {
	if fn == nil {
		return None, ErrNilStart
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.maybePreemptLocked()

	if r.total >= maxThreads {
		return None, ErrTooManyThreads
	}
	id := ID(r.total)
	r.total++
	t := &r.threads[id]
	*t = tcb{
		id:       id,
		gate:     make(chan struct{}, 1),
		status:   Ready,
		start:    fn,
		arg:      arg,
		joinedBy: None,
	}
	go r.trampoline(t, r.gen)
	r.emit(EvCreate, id, 0)
	return id, nil
}

// trampoline is the entry point of every non-initial thread: it waits for
// the first dispatch, runs the start function, and passes its result to
// Exit. It never returns to a caller.
func (r *Runtime) trampoline(t *tcb, gen uint64) {
	<-t.gate
	r.mu.Lock()
	if r.shutdown || r.gen != gen {
		r.mu.Unlock()
		return
	}
	fn, arg := t.start, t.arg
	t.start, t.arg = nil, nil
	r.mu.Unlock()

	defer func() {
		if v := recover(); v != nil {
			if !firePanicHook(PanicInfo{Thread: t.id, Value: v, Stack: captureStack()}) {
				panic(v)
			}
			r.Exit(nil)
		}
	}()
	r.Exit(fn(arg))
}

// Self returns the ID of the calling thread. Like every runtime entry
// point it is a preemption point.
func (r *Runtime) Self() ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.maybePreemptLocked()
	return r.current
}

// Exit terminates the calling thread, recording v for a later Join. When
// the last thread exits the runtime tears down and Config.ExitFunc runs
// with code 0. Exit does not return.
func (r *Runtime) Exit(v any) {
	r.mu.Lock()
	r.ensureInitLocked()

	cur := &r.threads[r.current]
	cur.ret = v
	cur.status = Exited
	r.emit(EvExit, cur.id, 0)

	if cur.joinedBy != None {
		j := &r.threads[cur.joinedBy]
		j.status = Ready
		r.emit(EvWake, j.id, int32(cur.id))
	}

	if r.allExitedLocked() {
		r.terminate()
	}

	next := r.pickNext()
	if next == nil {
		if r.sleepers == 0 {
			r.reportDeadlockLocked()
		}
		r.idle = true
	} else {
		next.gate <- struct{}{}
	}
	r.mu.Unlock()
	goexit()
}

// Join suspends the caller until the thread named by id exits and returns
// the value that thread passed to Exit (or returned from its start
// function). Joining an already-exited thread returns immediately without
// a context switch. Each thread can be joined at most once.
func (r *Runtime) Join(id ID) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.maybePreemptLocked()

	if id < 0 || id >= ID(r.total) {
		return nil, ErrNoSuchThread
	}
	t := &r.threads[id]
	if t.joined {
		return nil, ErrAlreadyJoined
	}
	if id == r.current {
		return nil, ErrJoinSelf
	}
	if t.status != Exited {
		if t.joinedBy != None {
			return nil, ErrAlreadyJoined
		}
		cur := &r.threads[r.current]
		t.joinedBy = cur.id
		cur.status = Blocked
		r.emit(EvBlock, cur.id, int32(id))
		r.reschedule(cur)
	}
	v := t.ret
	r.releaseLocked(t)
	return v, nil
}

// releaseLocked reclaims a joined thread's slot: the goroutine is gone, so
// dropping the references is the stack-free of this runtime. The slot
// keeps its Exited status and joined mark so the ID stays unambiguous.
func (r *Runtime) releaseLocked(t *tcb) {
	t.joined = true
	t.joinedBy = None
	t.ret = nil
	t.gate = nil
}

// Yield gives up the processor voluntarily; the caller drops to Ready and
// the next Ready thread runs.
func (r *Runtime) Yield() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitLocked()
	r.slice.Store(false)

	cur := &r.threads[r.current]
	cur.status = Ready
	r.reschedule(cur)
}
