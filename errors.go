package uthread

import "errors"

var (
	// ErrTooManyThreads is returned by Create when the thread table is full.
	ErrTooManyThreads = errors.New("thread table full")
	// ErrNilStart is returned by Create when no start function is given.
	ErrNilStart = errors.New("nil start function")
	// ErrNoSuchThread is returned by Join for an unknown thread ID.
	ErrNoSuchThread = errors.New("no such thread")
	// ErrAlreadyJoined is returned by Join when the target was already joined.
	ErrAlreadyJoined = errors.New("thread already joined")
	// ErrJoinSelf is returned by Join when a thread names itself as target.
	ErrJoinSelf = errors.New("thread cannot join itself")

	// ErrTooManySems is returned by SemInit when the semaphore directory is full.
	ErrTooManySems = errors.New("semaphore directory full")
	// ErrBadSemValue is returned by SemInit for an initial value at or above SemValueMax.
	ErrBadSemValue = errors.New("semaphore value out of range")
	// ErrNoSuchSem is returned for operations on a destroyed or never-initialized semaphore.
	ErrNoSuchSem = errors.New("no such semaphore")
	// ErrSemOverflow is returned by SemPost when the counter would leave its range.
	ErrSemOverflow = errors.New("semaphore overflow")
)
