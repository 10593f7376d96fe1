package uthread

import "sync/atomic"

// EventKind classifies a trace event.
type EventKind uint8

const (
	EvCreate EventKind = iota + 1
	EvRun
	EvBlock
	EvWake
	EvExit
	EvSemWait
	EvSemPost
)

func (k EventKind) String() string {
	switch k {
	case EvCreate:
		return "create"
	case EvRun:
		return "run"
	case EvBlock:
		return "block"
	case EvWake:
		return "wake"
	case EvExit:
		return "exit"
	case EvSemWait:
		return "sem-wait"
	case EvSemPost:
		return "sem-post"
	default:
		return "unknown"
	}
}

// Event is one scheduling occurrence. Arg carries the event's counterpart:
// the joined or exited thread for wakes, the semaphore id for semaphore
// events, -1 for timer wakeups.
type Event struct {
	Tick   uint64
	Kind   EventKind
	Thread ID
	Arg    int32
}

const traceSlots = 256

// TraceRing is a fixed-size single-consumer event queue. Producers drop
// events when the ring is full; tracing is lossy by design.
type TraceRing struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [traceSlots]Event
}

// TryPush attempts to enqueue an event, returning false if the ring is full.
func (tr *TraceRing) TryPush(ev Event) bool {
	head := tr.head.Load()
	tail := tr.tail.Load()
	if head-tail >= traceSlots {
		return false
	}
	if !tr.head.CompareAndSwap(head, head+1) {
		return false
	}
	tr.slots[head%traceSlots] = ev
	return true
}

// TryPop dequeues one event, returning false if the ring is empty.
func (tr *TraceRing) TryPop() (Event, bool) {
	tail := tr.tail.Load()
	head := tr.head.Load()
	if tail == head {
		return Event{}, false
	}
	ev := tr.slots[tail%traceSlots]
	tr.tail.Store(tail + 1)
	return ev, true
}

// emit publishes a scheduling event when tracing is enabled.
func (r *Runtime) emit(kind EventKind, th ID, arg int32) {
	if r.trace == nil {
		return
	}
	r.trace.TryPush(Event{Tick: r.ticks.Load(), Kind: kind, Thread: th, Arg: arg})
}
