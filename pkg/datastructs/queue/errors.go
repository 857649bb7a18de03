package queue

import "errors"

const (
	opPeek    = "peek"
	opDequeue = "dequeue"
)

// ErrEmptyQueue is matched by every error returned from Peek or Dequeue on an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")

// EmptyQueueError returns when Peek or Dequeue is called on a queue with no elements.
type EmptyQueueError struct {
	Op string // Operation that failed.
}

// Error implements the error interface.
func (e *EmptyQueueError) Error() string {
	return "queue: " + e.Op + " on empty queue"
}

// Is reports whether target is ErrEmptyQueue.
func (e *EmptyQueueError) Is(target error) bool {
	return target == ErrEmptyQueue
}

// IsEmptyQueue returns a boolean indicating whether the error is an empty queue error.
func IsEmptyQueue(err error) bool {
	if err == nil {
		return false
	}
	var e *EmptyQueueError
	return errors.As(err, &e)
}

func errEmpty(op string) error {
	return &EmptyQueueError{Op: op}
}
