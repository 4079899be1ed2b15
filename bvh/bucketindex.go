package bvh

import "github.com/mrdav30/swiftcollections/hashutil"

// hashValue masks off the sign bit of the comparer's hash so it can be used
// as an unsigned index into the bucket array.
func (b *BVH[T]) hashValue(v T) int32 {
	return b.comparer.Hash(v) & 0x7FFFFFFF
}

// probeBucket returns the slot holding value's node index, if any, via
// linear probing from its home slot.
func (b *BVH[T]) probeBucket(v T) (slot int, nodeIdx int32, ok bool) {
	idx := int(b.hashValue(v)) & b.bucketMask
	for i := 0; i <= b.bucketMask; i++ {
		cell := b.buckets[idx]
		if cell == absent {
			return 0, 0, false
		}
		if n, live := b.nodes.Get(cell); live && n.isLeaf && b.comparer.Equal(n.value, v) {
			return idx, cell, true
		}
		idx = (idx + 1) & b.bucketMask
	}
	return 0, 0, false
}

// insertBucket records value's nodeIdx, growing the bucket array first if
// the arena has outgrown it.
func (b *BVH[T]) insertBucket(v T, nodeIdx int32) {
	b.ensureBucketCapacity()
	idx := int(b.hashValue(v)) & b.bucketMask
	for {
		if b.buckets[idx] == absent {
			b.buckets[idx] = nodeIdx
			return
		}
		idx = (idx + 1) & b.bucketMask
	}
}

// removeBucket clears the slot at idx and repairs the probe chain with
// backward-shift deletion (linear probing without tombstones requires
// shifting any entry that can now be reached directly into the gap,
// otherwise later lookups would stop early at the cleared cell).
func (b *BVH[T]) removeBucket(idx int) {
	b.buckets[idx] = absent
	j := idx
	for {
		j = (j + 1) & b.bucketMask
		cell := b.buckets[j]
		if cell == absent {
			return
		}
		n, live := b.nodes.Get(cell)
		if !live {
			continue
		}
		home := int(b.hashValue(n.value)) & b.bucketMask
		if probeGapBetween(idx, home, j, b.bucketMask) {
			b.buckets[idx] = cell
			b.buckets[j] = absent
			idx = j
		}
	}
}

// probeGapBetween reports whether, on the circular probe sequence of
// length mask+1, the free slot at gap lies within [home, cur) (moving the
// entry currently at cur back into gap would not break its own lookup).
func probeGapBetween(gap, home, cur, mask int) bool {
	if home <= cur {
		return home <= gap && gap < cur
	}
	return gap >= home || gap < cur
}

// ensureBucketCapacity grows and rebuilds the bucket index when the
// arena's slot count has outgrown it, re-hashing every currently indexed
// leaf into the larger table.
func (b *BVH[T]) ensureBucketCapacity() {
	if b.nodes.Cap() <= len(b.buckets) {
		return
	}
	newLen := hashutil.NextPowerOfTwo(b.nodes.Cap())
	old := b.buckets
	b.buckets = make([]int32, newLen)
	for i := range b.buckets {
		b.buckets[i] = absent
	}
	b.bucketMask = newLen - 1
	for _, nodeIdx := range old {
		if nodeIdx == absent {
			continue
		}
		n, live := b.nodes.Get(nodeIdx)
		if !live || !n.isLeaf {
			continue
		}
		idx := int(b.hashValue(n.value)) & b.bucketMask
		for b.buckets[idx] != absent {
			idx = (idx + 1) & b.bucketMask
		}
		b.buckets[idx] = nodeIdx
	}
}
