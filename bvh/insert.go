package bvh

// balanceThreshold is the subtree-size imbalance past which insertion
// descends into the smaller side outright rather than weighing cost.
const balanceThreshold = 2

// Insert allocates a leaf for (value, bounds), threads it into the tree,
// and records the value->node mapping in the secondary bucket index.
func (b *BVH[T]) Insert(value T, bounds Bounds) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	leafIdx := b.nodes.Add(node[T]{
		parentIndex: absent,
		leftIndex:   absent,
		rightIndex:  absent,
		bounds:      bounds,
		value:       value,
		subtreeSize: 1,
		isLeaf:      true,
	})
	b.insertBucket(value, leafIdx)
	b.leafCount++

	b.rootIndex = b.insertIntoTree(b.rootIndex, leafIdx)
	return true, nil
}

// insertIntoTree threads newLeaf into the subtree rooted at parent: an
// absent parent adopts the leaf directly; a leaf parent splits into a new
// internal node; an internal parent descends into the child chosen by
// balance first, cost second.
func (b *BVH[T]) insertIntoTree(parent, newLeaf int32) int32 {
	if parent == absent {
		return newLeaf
	}

	parentNode, ok := b.nodes.Get(parent)
	if !ok {
		panic(ErrCorruption)
	}

	if parentNode.isLeaf {
		leafNode, _ := b.nodes.Get(newLeaf)
		internalIdx := b.nodes.Add(node[T]{
			parentIndex: parentNode.parentIndex,
			leftIndex:   parent,
			rightIndex:  newLeaf,
			bounds:      parentNode.bounds.Union(leafNode.bounds),
			subtreeSize: 1 + parentNode.subtreeSize + leafNode.subtreeSize,
			isLeaf:      false,
		})
		parentNode.parentIndex = internalIdx
		b.nodes.Set(parent, parentNode)
		leafNode.parentIndex = internalIdx
		b.nodes.Set(newLeaf, leafNode)
		return internalIdx
	}

	left, right := parentNode.leftIndex, parentNode.rightIndex
	leftSize := b.subtreeSizeAt(left)
	rightSize := b.subtreeSizeAt(right)

	var descendLeft bool
	switch {
	case absDiff(leftSize, rightSize) > balanceThreshold:
		descendLeft = leftSize < rightSize
	default:
		newLeafNode, _ := b.nodes.Get(newLeaf)
		var costLeft, costRight float64
		if left != absent {
			ln, _ := b.nodes.Get(left)
			costLeft = newLeafNode.bounds.Cost(ln.bounds)
		}
		if right != absent {
			rn, _ := b.nodes.Get(right)
			costRight = newLeafNode.bounds.Cost(rn.bounds)
		}
		switch {
		case left == absent:
			descendLeft = false
		case right == absent:
			descendLeft = true
		default:
			descendLeft = costLeft <= costRight
		}
	}

	var childResult int32
	if descendLeft {
		childResult = b.insertIntoTree(left, newLeaf)
		parentNode.leftIndex = childResult
	} else {
		childResult = b.insertIntoTree(right, newLeaf)
		parentNode.rightIndex = childResult
	}

	child, _ := b.nodes.Get(childResult)
	child.parentIndex = parent
	b.nodes.Set(childResult, child)

	parentNode.bounds = b.unionChildren(parentNode.leftIndex, parentNode.rightIndex)
	parentNode.subtreeSize = 1 + b.subtreeSizeAt(parentNode.leftIndex) + b.subtreeSizeAt(parentNode.rightIndex)
	b.nodes.Set(parent, parentNode)
	return parent
}

func (b *BVH[T]) subtreeSizeAt(idx int32) uint32 {
	if idx == absent {
		return 0
	}
	n, ok := b.nodes.Get(idx)
	if !ok {
		return 0
	}
	return n.subtreeSize
}

// unionChildren returns the union of whichever of left/right are
// present; at least one must be.
func (b *BVH[T]) unionChildren(left, right int32) Bounds {
	switch {
	case left == absent:
		n, _ := b.nodes.Get(right)
		return n.bounds
	case right == absent:
		n, _ := b.nodes.Get(left)
		return n.bounds
	default:
		ln, _ := b.nodes.Get(left)
		rn, _ := b.nodes.Get(right)
		return ln.bounds.Union(rn.bounds)
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
