// Package queue provides a FIFO ring buffer with power-of-two capacity
// and wrap arithmetic.
package queue

import "github.com/mrdav30/swiftcollections/hashutil"

// Ring is a growable FIFO queue backed by a power-of-two-sized slice.
// Head/tail indices wrap via a mask instead of modulo, for O(1) rotation
// without a divide.
type Ring[T any] struct {
	buf   []T
	mask  int
	head  int
	count int
}

// NewRing creates a Ring with at least the given initial capacity
// (rounded up to a power of two, floor hashutil.DefaultCapacity).
func NewRing[T any](capacity int) *Ring[T] {
	cap2 := hashutil.NextPowerOfTwo(capacity)
	return &Ring[T]{
		buf:  make([]T, cap2),
		mask: cap2 - 1,
	}
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the current backing capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// PushBack appends v to the tail, growing the buffer (power-of-two
// doubling) if full.
func (r *Ring[T]) PushBack(v T) {
	if r.count == len(r.buf) {
		r.grow()
	}
	idx := (r.head + r.count) & r.mask
	r.buf[idx] = v
	r.count++
}

// PopFront removes and returns the head element. ok is false on an empty
// queue.
func (r *Ring[T]) PopFront() (v T, ok bool) {
	if r.count == 0 {
		return v, false
	}
	v = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // drop the reference so GC can reclaim it
	r.head = (r.head + 1) & r.mask
	r.count--
	return v, true
}

// PeekFront returns the head element without removing it.
func (r *Ring[T]) PeekFront() (v T, ok bool) {
	if r.count == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

// Clear empties the queue without shrinking the backing array. Capacity
// only ever grows for the lifetime of a Ring.
func (r *Ring[T]) Clear() {
	var zero T
	for i := 0; i < r.count; i++ {
		r.buf[(r.head+i)&r.mask] = zero
	}
	r.head = 0
	r.count = 0
}

// grow doubles the backing array and re-linearizes the wrapped contents
// starting at index 0.
func (r *Ring[T]) grow() {
	newCap := len(r.buf) * 2
	if newCap == 0 {
		newCap = hashutil.DefaultCapacity
	}
	newBuf := make([]T, newCap)
	for i := 0; i < r.count; i++ {
		newBuf[i] = r.buf[(r.head+i)&r.mask]
	}
	r.buf = newBuf
	r.mask = newCap - 1
	r.head = 0
}
