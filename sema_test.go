package uthread

import (
	"testing"
	"time"
)

func TestSemInitValidation(t *testing.T) {
	r := newTestRuntime(t, time.Hour)

	if _, err := r.SemInit(SemValueMax); err != ErrBadSemValue {
		t.Fatalf("SemInit(max) error = %v, want ErrBadSemValue", err)
	}
	s, err := r.SemInit(SemValueMax - 1)
	if err != nil {
		t.Fatalf("SemInit(max-1) error = %v", err)
	}
	if !s.Valid() {
		t.Fatal("SemInit() returned invalid handle")
	}
}

func TestSemDirectoryFull(t *testing.T) {
	r := newTestRuntime(t, time.Hour)

	sems := make([]Sem, 0, maxSems)
	for i := 0; i < maxSems; i++ {
		s, err := r.SemInit(0)
		if err != nil {
			t.Fatalf("SemInit() #%d error = %v", i, err)
		}
		sems = append(sems, s)
	}
	if _, err := r.SemInit(0); err != ErrTooManySems {
		t.Fatalf("SemInit() error = %v, want ErrTooManySems", err)
	}

	// Destroying one frees a slot.
	if err := r.SemDestroy(sems[0]); err != nil {
		t.Fatalf("SemDestroy() error = %v", err)
	}
	if _, err := r.SemInit(0); err != nil {
		t.Fatalf("SemInit() after destroy error = %v", err)
	}
}

func TestSemDestroyedHandle(t *testing.T) {
	r := newTestRuntime(t, time.Hour)

	s, err := r.SemInit(1)
	if err != nil {
		t.Fatalf("SemInit() error = %v", err)
	}
	if err := r.SemDestroy(s); err != nil {
		t.Fatalf("SemDestroy() error = %v", err)
	}
	if err := r.SemDestroy(s); err != ErrNoSuchSem {
		t.Fatalf("second SemDestroy() error = %v, want ErrNoSuchSem", err)
	}
	if err := r.SemWait(s); err != ErrNoSuchSem {
		t.Fatalf("SemWait() error = %v, want ErrNoSuchSem", err)
	}
	if err := r.SemPost(s); err != ErrNoSuchSem {
		t.Fatalf("SemPost() error = %v, want ErrNoSuchSem", err)
	}
	if err := r.SemWait(Sem{}); err != ErrNoSuchSem {
		t.Fatalf("SemWait(zero) error = %v, want ErrNoSuchSem", err)
	}
}

func TestSemWaitFastPath(t *testing.T) {
	r := newTestRuntime(t, time.Hour)

	s, err := r.SemInit(2)
	if err != nil {
		t.Fatalf("SemInit() error = %v", err)
	}
	// Two waits consume the counter without blocking the only thread.
	if err := r.SemWait(s); err != nil {
		t.Fatalf("SemWait() error = %v", err)
	}
	if err := r.SemWait(s); err != nil {
		t.Fatalf("SemWait() error = %v", err)
	}
	if err := r.SemPost(s); err != nil {
		t.Fatalf("SemPost() error = %v", err)
	}
}

func TestSemPostOverflow(t *testing.T) {
	r := newTestRuntime(t, time.Hour)

	s, err := r.SemInit(SemValueMax - 1)
	if err != nil {
		t.Fatalf("SemInit() error = %v", err)
	}
	if err := r.SemPost(s); err != ErrSemOverflow {
		t.Fatalf("SemPost() error = %v, want ErrSemOverflow", err)
	}
}

func TestSemFIFOOrder(t *testing.T) {
	r := newTestRuntime(t, time.Hour)

	s, err := r.SemInit(0)
	if err != nil {
		t.Fatalf("SemInit() error = %v", err)
	}

	var order []ID
	var ids []ID
	for i := 0; i < 4; i++ {
		id, err := r.Create(func(any) any {
			if err := r.SemWait(s); err != nil {
				return err
			}
			order = append(order, r.Self())
			return nil
		}, nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, id)
	}

	// One yield runs every waiter until it blocks on the semaphore.
	r.Yield()
	var st []ThreadState
	st = r.Snapshot(st)
	for _, id := range ids {
		if st[id].Status != Blocked {
			t.Fatalf("thread %d status = %s, want blocked", id, st[id].Status)
		}
	}

	for i := 0; i < 4; i++ {
		if err := r.SemPost(s); err != nil {
			t.Fatalf("SemPost() #%d error = %v", i, err)
		}
	}
	// Posting must not have run anybody yet.
	if len(order) != 0 {
		t.Fatalf("order after posts = %v, want empty", order)
	}

	r.Yield()
	for _, id := range ids {
		if _, err := r.Join(id); err != nil {
			t.Fatalf("Join(%d) error = %v", id, err)
		}
	}

	if len(order) != 4 {
		t.Fatalf("order length = %d, want 4 (order %v)", len(order), order)
	}
	for i, id := range ids {
		if order[i] != id {
			t.Fatalf("order[%d] = %d, want %d (order %v)", i, order[i], id, order)
		}
	}
}

func TestSemMutualExclusion(t *testing.T) {
	r := newTestRuntime(t, time.Millisecond)

	s, err := r.SemInit(1)
	if err != nil {
		t.Fatalf("SemInit() error = %v", err)
	}

	const (
		workers    = 8
		iterations = 10000
	)
	counter := 0
	var ids []ID
	for i := 0; i < workers; i++ {
		id, err := r.Create(func(any) any {
			for j := 0; j < iterations; j++ {
				if err := r.SemWait(s); err != nil {
					return err
				}
				counter++
				if err := r.SemPost(s); err != nil {
					return err
				}
			}
			return nil
		}, nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, id)
	}
	for _, id := range ids {
		if v, err := r.Join(id); err != nil || v != nil {
			t.Fatalf("Join(%d) = %v, %v", id, v, err)
		}
	}
	if counter != workers*iterations {
		t.Fatalf("counter = %d, want %d", counter, workers*iterations)
	}
}
