package uthread

import (
	"runtime/debug"
	"sync/atomic"
)

// PanicInfo describes a fault the runtime cannot recover from on its own:
// a panic escaping a thread's start function, or a configuration in which
// every live thread is blocked and no timer wakeup is pending.
type PanicInfo struct {
	Thread ID
	Value  any
	Stack  []byte
}

var (
	panicActive atomic.Bool

	panicHandler atomic.Value // func(PanicInfo)
)

// InPanicMode reports whether any fault has been reported.
func InPanicMode() bool {
	return panicActive.Load()
}

// SetPanicHandler installs a process-wide fault handler. With a handler
// installed a deadlocked runtime stays parked after reporting, matching
// the behavior of a thread that is never scheduled again; without one the
// runtime panics. The handler must not call back into the runtime.
func SetPanicHandler(fn func(PanicInfo)) {
	panicHandler.Store(fn)
}

// firePanicHook reports info to the installed handler and returns whether
// one was present.
func firePanicHook(info PanicInfo) bool {
	panicActive.Store(true)
	v := panicHandler.Load()
	if v == nil {
		return false
	}
	fn, ok := v.(func(PanicInfo))
	if !ok || fn == nil {
		return false
	}
	fn(info)
	return true
}

func captureStack() []byte {
	return debug.Stack()
}
