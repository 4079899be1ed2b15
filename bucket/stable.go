// Package bucket provides a stable-index bucket: O(1) Add/Remove yielding
// handles that stay valid (and stable) across unrelated insertions and
// removals, backed by a free-index stack. The BVH arena builds on this
// directly instead of reimplementing its own free-list.
package bucket

import "github.com/mrdav30/swiftcollections/queue"

// Stable is an array-backed container that hands out stable int32
// handles on Add and reuses freed handles LIFO on the next Add, instead
// of leaving holes in the backing array.
type Stable[T any] struct {
	items []T
	used  []bool
	free  *queue.Stack[int32]
	count int
}

// New creates an empty Stable bucket.
func New[T any]() *Stable[T] {
	return &Stable[T]{free: queue.NewStack[int32](0)}
}

// Len returns the number of live entries.
func (b *Stable[T]) Len() int { return b.count }

// Cap returns the current backing capacity.
func (b *Stable[T]) Cap() int { return len(b.items) }

// Add stores v and returns a stable handle for it: a freed index if one
// is available (LIFO), otherwise a freshly appended slot.
func (b *Stable[T]) Add(v T) int32 {
	if idx, ok := b.free.Pop(); ok {
		b.items[idx] = v
		b.used[idx] = true
		b.count++
		return idx
	}
	b.items = append(b.items, v)
	b.used = append(b.used, true)
	b.count++
	return int32(len(b.items) - 1)
}

// Remove frees the slot at handle, pushing it onto the free-index stack
// for LIFO reuse. It is a no-op if the handle is out of range or already
// free.
func (b *Stable[T]) Remove(handle int32) {
	if handle < 0 || int(handle) >= len(b.items) || !b.used[handle] {
		return
	}
	var zero T
	b.items[handle] = zero
	b.used[handle] = false
	b.free.Push(handle)
	b.count--
}

// Get returns the value at handle and whether it is currently live.
func (b *Stable[T]) Get(handle int32) (v T, ok bool) {
	if handle < 0 || int(handle) >= len(b.items) || !b.used[handle] {
		return v, false
	}
	return b.items[handle], true
}

// Set overwrites the value at a live handle. It is a no-op if the handle
// is not currently live.
func (b *Stable[T]) Set(handle int32, v T) {
	if handle < 0 || int(handle) >= len(b.items) || !b.used[handle] {
		return
	}
	b.items[handle] = v
}

// Contains reports whether handle currently refers to a live entry.
func (b *Stable[T]) Contains(handle int32) bool {
	return handle >= 0 && int(handle) < len(b.items) && b.used[handle]
}

// Clear empties the bucket, invalidating every previously issued handle.
func (b *Stable[T]) Clear() {
	b.items = b.items[:0]
	b.used = b.used[:0]
	b.free.Clear()
	b.count = 0
}

// EnsureCapacity pre-grows the backing array to at least n slots and
// pushes the newly available indices onto the free stack, so Cap() rises
// immediately and the next n - (previous Cap()) Adds reuse the pre-grown
// slots instead of appending, avoiding repeated reallocation on
// known-size bulk population.
func (b *Stable[T]) EnsureCapacity(n int) {
	oldLen := len(b.items)
	if n <= oldLen {
		return
	}
	grown := make([]T, n)
	copy(grown, b.items)
	b.items = grown
	grownUsed := make([]bool, n)
	copy(grownUsed, b.used)
	b.used = grownUsed
	for i := n - 1; i >= oldLen; i-- {
		b.free.Push(int32(i))
	}
}
