package queue

import (
	"iter"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/utils"
)

var _ Queue[int] = (*Ring[int])(nil)

// Ring is an unbounded FIFO queue backed by a circular buffer.
// Capacity is always a power of two: it doubles when full and halves when
// occupancy drops to a quarter, never going below the initial capacity.
// The zero value is an empty queue ready to use.
type Ring[T any] struct {
	buf    []T
	head   int // index of the front element
	size   int
	minCap int
	logger *zap.Logger
}

// New creates an empty Ring.
func New[T any](opts ...Option) *Ring[T] {
	o := newOptions(opts)
	capacity := utils.CeilToPowerOfTwo(o.capacity)
	return &Ring[T]{
		buf:    make([]T, capacity),
		minCap: capacity,
		logger: o.logger,
	}
}

// Size returns the number of elements in the queue.
func (r *Ring[T]) Size() int {
	return r.size
}

// Cap returns the number of slots currently allocated.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty returns true if the queue holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// Add appends value to the back and returns the new size.
func (r *Ring[T]) Add(value T) int {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[r.wrapIndex(r.head+r.size)] = value
	r.size++
	return r.size
}

// Peek returns the front element without removing it.
func (r *Ring[T]) Peek() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, errEmpty(opPeek)
	}
	return r.buf[r.head], nil
}

// Dequeue removes and returns the front element.
func (r *Ring[T]) Dequeue() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, errEmpty(opDequeue)
	}

	value := r.buf[r.head]
	r.buf[r.head] = zero // release the reference for GC
	r.head = r.wrapIndex(r.head + 1)
	r.size--

	if r.size == 0 {
		r.head = 0
	}
	if len(r.buf) > r.minCap && r.size <= len(r.buf)>>2 {
		r.resize(len(r.buf) >> 1)
	}
	return value, nil
}

// Values returns a copy of the elements from front to back.
func (r *Ring[T]) Values() []T {
	if r.size == 0 {
		return nil
	}
	out := make([]T, r.size)
	r.copyTo(out)
	return out
}

// All iterates over the elements from front to back without removing them.
// The queue must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[r.wrapIndex(r.head+i)]) {
				return
			}
		}
	}
}

// Clear removes all elements and returns the buffer to its initial capacity.
func (r *Ring[T]) Clear() {
	if len(r.buf) > r.minCap {
		r.buf = make([]T, r.minCap)
	} else {
		clear(r.buf)
	}
	r.head = 0
	r.size = 0
}

// wrapIndex returns the index wrapped within buffer capacity.
func (r *Ring[T]) wrapIndex(idx int) int {
	return idx & (len(r.buf) - 1)
}

// grow doubles the buffer, allocating the default capacity for a zero-value Ring.
func (r *Ring[T]) grow() {
	if len(r.buf) == 0 {
		r.buf = make([]T, defaultCapacity)
		r.minCap = defaultCapacity
		return
	}
	r.resize(len(r.buf) << 1)
}

// resize moves the elements into a buffer of newCap slots, front first.
func (r *Ring[T]) resize(newCap int) {
	buf := make([]T, newCap)
	r.copyTo(buf)

	if r.logger != nil {
		r.logger.Debug("queue resized",
			zap.Int("from", len(r.buf)),
			zap.Int("to", newCap),
			zap.Int("size", r.size),
		)
	}

	r.buf = buf
	r.head = 0
}

// copyTo copies the elements from front to back into dst, handling wrap-around.
func (r *Ring[T]) copyTo(dst []T) int {
	if r.size == 0 {
		return 0
	}

	// Simple case: no wrap-around
	end := r.head + r.size
	if end <= len(r.buf) {
		return copy(dst, r.buf[r.head:end])
	}

	n := copy(dst, r.buf[r.head:])
	return n + copy(dst[n:], r.buf[:end-len(r.buf)])
}
