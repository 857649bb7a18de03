// Package queue provides unbounded first-in-first-out queues.
//
// Two backings implement Queue: Ring, a growable circular buffer returned by
// New, and List, a singly linked list returned by NewList. Neither is safe for
// concurrent use; callers sharing a queue between goroutines must serialise
// access themselves.
package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Size returns the number of elements currently held.
	Size() int

	// Add appends value to the back of the queue and returns the new size.
	Add(value T) int

	// Peek returns the front element without removing it.
	// Returns ErrEmptyQueue if the queue holds no elements.
	Peek() (T, error)

	// Dequeue removes and returns the front element.
	// Returns ErrEmptyQueue if the queue holds no elements.
	Dequeue() (T, error)
}
