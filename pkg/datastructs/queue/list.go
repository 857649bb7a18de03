package queue

import "iter"

var _ Queue[int] = (*List[int])(nil)

// node is a single element of a List.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is an unbounded FIFO queue backed by a singly linked list.
// Every Add allocates one node; memory is released as elements leave.
// The zero value is an empty queue ready to use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewList creates an empty List.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Size returns the number of elements in the queue.
func (l *List[T]) Size() int {
	return l.size
}

// IsEmpty returns true if the queue holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Add appends value to the back and returns the new size.
func (l *List[T]) Add(value T) int {
	l.pushBack(&node[T]{value: value})
	return l.size
}

// Peek returns the front element without removing it.
func (l *List[T]) Peek() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errEmpty(opPeek)
	}
	return l.head.value, nil
}

// Dequeue removes and returns the front element.
func (l *List[T]) Dequeue() (T, error) {
	front := l.popFront()
	if front == nil {
		var zero T
		return zero, errEmpty(opDequeue)
	}
	return front.value, nil
}

// Values returns a copy of the elements from front to back.
func (l *List[T]) Values() []T {
	if l.size == 0 {
		return nil
	}
	out := make([]T, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		out = append(out, current.value)
	}
	return out
}

// All iterates over the elements from front to back without removing them.
// The queue must not be modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// popFront removes and returns the head node.
func (l *List[T]) popFront() *node[T] {
	if l.head == nil {
		return nil
	}

	front := l.head
	l.head = front.next
	if l.head == nil {
		l.tail = nil
	}

	front.next = nil
	l.size--

	return front
}

// pushBack adds a node to the tail of the list.
func (l *List[T]) pushBack(n *node[T]) {
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	n.next = nil
	l.tail = n
	l.size++
}
