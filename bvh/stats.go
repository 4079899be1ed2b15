package bvh

// Stats is a snapshot of arena/tree bookkeeping exposed so tests can
// assert arena/tree consistency properties without reaching into private
// fields.
type Stats struct {
	LeafCount     int
	InternalCount int
	ArenaLen      int
	FreeCount     int
	RootIndex     int32
}

// Stats takes a snapshot. InternalCount is counted by walking the
// reachable tree from the root; LeafCount is the maintained leaf counter,
// and ArenaLen/FreeCount come from the arena's capacity and live count.
func (b *BVH[T]) Stats() Stats {
	tok := b.mu.RLock()
	defer b.mu.RUnlock(tok)

	internal := 0
	if b.rootIndex != absent {
		stack := b.stackPool.Rent()
		defer b.stackPool.Release(stack)
		stack.Push(b.rootIndex)
		for {
			idx, ok := stack.Pop()
			if !ok {
				break
			}
			n, live := b.nodes.Get(idx)
			if !live {
				continue
			}
			if !n.isLeaf {
				internal++
				if n.leftIndex != absent {
					stack.Push(n.leftIndex)
				}
				if n.rightIndex != absent {
					stack.Push(n.rightIndex)
				}
			}
		}
	}

	return Stats{
		LeafCount:     b.leafCount,
		InternalCount: internal,
		ArenaLen:      b.nodes.Cap(),
		FreeCount:     b.nodes.Cap() - b.nodes.Len(),
		RootIndex:     b.rootIndex,
	}
}

// SubtreeSize returns the stored subtree_size of the node at idx, for
// tests that want to check the recursive identity directly against the
// tree shape.
func (b *BVH[T]) SubtreeSize(idx int32) (uint32, bool) {
	tok := b.mu.RLock()
	defer b.mu.RUnlock(tok)
	n, ok := b.nodes.Get(idx)
	if !ok {
		return 0, false
	}
	return n.subtreeSize, true
}

// Children returns idx's left/right child indices and whether idx is a
// leaf, for tests walking the tree structure directly.
func (b *BVH[T]) Children(idx int32) (left, right int32, isLeaf bool, ok bool) {
	tok := b.mu.RLock()
	defer b.mu.RUnlock(tok)
	n, live := b.nodes.Get(idx)
	if !live {
		return 0, 0, false, false
	}
	return n.leftIndex, n.rightIndex, n.isLeaf, true
}

// Root returns the current root index, or (0, false) on an empty tree.
func (b *BVH[T]) Root() (int32, bool) {
	tok := b.mu.RLock()
	defer b.mu.RUnlock(tok)
	if b.rootIndex == absent {
		return 0, false
	}
	return b.rootIndex, true
}

// Bounds returns the stored bounds of the node at idx.
func (b *BVH[T]) Bounds(idx int32) (Bounds, bool) {
	tok := b.mu.RLock()
	defer b.mu.RUnlock(tok)
	n, live := b.nodes.Get(idx)
	if !live {
		return Bounds{}, false
	}
	return n.bounds, true
}
