package bvh

import "github.com/mrdav30/swiftcollections/hashutil"

// UpdateBounds looks up value's leaf, replaces its bounds, and propagates
// bound changes up to the root, short-circuiting once an ancestor's
// recomputed union equals its previously stored bounds.
func (b *BVH[T]) UpdateBounds(value T, newBounds Bounds) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, leafIdx, ok := b.probeBucket(value)
	if !ok {
		return false
	}

	leaf, _ := b.nodes.Get(leafIdx)
	leaf.bounds = newBounds
	b.nodes.Set(leafIdx, leaf)

	current := leaf.parentIndex
	for current != absent {
		n, ok := b.nodes.Get(current)
		if !ok {
			panic(ErrCorruption)
		}
		union := b.unionChildren(n.leftIndex, n.rightIndex)
		if union.Equal(n.bounds) {
			break
		}
		n.bounds = union
		b.nodes.Set(current, n)
		current = n.parentIndex
	}
	return true
}

// Remove deletes value's leaf if present, then ascends repairing parents'
// bounds and subtree sizes, freeing any ancestor that loses its last
// child. Removing the tree's sole leaf clears the whole BVH.
func (b *BVH[T]) Remove(value T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	slot, leafIdx, ok := b.probeBucket(value)
	if !ok {
		return false
	}
	b.removeBucket(slot)

	leaf, _ := b.nodes.Get(leafIdx)
	parentIdx := leaf.parentIndex
	b.nodes.Remove(leafIdx)
	b.leafCount--

	if parentIdx == absent {
		// The removed leaf was the root: the sole-leaf special case.
		b.resetLocked()
		return true
	}

	current := parentIdx
	removedChild := leafIdx
	for {
		n, ok := b.nodes.Get(current)
		if !ok {
			panic(ErrCorruption)
		}
		if n.leftIndex == removedChild {
			n.leftIndex = absent
		}
		if n.rightIndex == removedChild {
			n.rightIndex = absent
		}

		if n.leftIndex == absent && n.rightIndex == absent {
			parent := n.parentIndex
			if n.isLeaf {
				b.leafCount--
			}
			b.nodes.Remove(current)
			if parent == absent {
				b.resetLocked()
				return true
			}
			removedChild = current
			current = parent
			continue
		}

		n.bounds = b.unionChildren(n.leftIndex, n.rightIndex)
		n.subtreeSize = 1 + b.subtreeSizeAt(n.leftIndex) + b.subtreeSizeAt(n.rightIndex)
		b.nodes.Set(current, n)

		parent := n.parentIndex
		if parent == absent {
			b.rootIndex = current
			return true
		}
		current = parent
		removedChild = absent
	}
}

// resetLocked clears the whole tree. Callers must already hold the
// exclusive lock.
func (b *BVH[T]) resetLocked() {
	b.nodes.Clear()
	b.buckets = make([]int32, hashutil.DefaultCapacity)
	for i := range b.buckets {
		b.buckets[i] = absent
	}
	b.bucketMask = hashutil.DefaultCapacity - 1
	b.rootIndex = absent
	b.leafCount = 0
}

// Clear empties the BVH entirely.
func (b *BVH[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
}

// EnsureCapacity pre-grows the arena and bucket index so n leaves can be
// inserted with fewer intermediate resizes.
func (b *BVH[T]) EnsureCapacity(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n <= 0 {
		return
	}
	b.nodes.EnsureCapacity(n)
	b.ensureBucketCapacity()
}
