package uthread

import (
	"testing"
	"time"
)

func TestTraceRingPopEmpty(t *testing.T) {
	var tr TraceRing

	if _, ok := tr.TryPop(); ok {
		t.Fatalf("TryPop() ok = true, want false")
	}
}

func TestTraceRingPushFull(t *testing.T) {
	var tr TraceRing

	for i := 0; i < traceSlots; i++ {
		if ok := tr.TryPush(Event{Thread: ID(i % 4)}); !ok {
			t.Fatalf("TryPush() ok = false at slot %d, want true", i)
		}
	}
	if ok := tr.TryPush(Event{}); ok {
		t.Fatalf("TryPush() ok = true when full, want false")
	}

	for i := 0; i < traceSlots; i++ {
		ev, ok := tr.TryPop()
		if !ok {
			t.Fatalf("TryPop() ok = false at slot %d, want true", i)
		}
		if ev.Thread != ID(i%4) {
			t.Fatalf("TryPop() thread = %d, want %d", ev.Thread, i%4)
		}
	}
}

func TestRuntimeEmitsEvents(t *testing.T) {
	r := New(Config{Quantum: time.Hour, ExitFunc: func(int) {}, Trace: true})
	t.Cleanup(r.Shutdown)

	id, err := r.Create(func(any) any { return nil }, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Join(id); err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	seen := map[EventKind]bool{}
	for {
		ev, ok := r.Trace().TryPop()
		if !ok {
			break
		}
		seen[ev.Kind] = true
	}
	for _, kind := range []EventKind{EvCreate, EvRun, EvBlock, EvWake, EvExit} {
		if !seen[kind] {
			t.Fatalf("missing %s event in trace", kind)
		}
	}
}

func TestEventKindStrings(t *testing.T) {
	if got := EvSemWait.String(); got != "sem-wait" {
		t.Fatalf("EvSemWait.String() = %q, want sem-wait", got)
	}
	if got := EventKind(0).String(); got != "unknown" {
		t.Fatalf("EventKind(0).String() = %q, want unknown", got)
	}
}
