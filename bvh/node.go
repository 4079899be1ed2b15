package bvh

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/mrdav30/swiftcollections/bucket"
	"github.com/mrdav30/swiftcollections/hashutil"
	"github.com/mrdav30/swiftcollections/pool"
	"github.com/mrdav30/swiftcollections/queue"
)

// absent is the sentinel used for parentIndex/leftIndex/rightIndex and
// for never-used bucket-index cells.
const absent int32 = -1

// node is one arena cell. An is-allocated flag is not a field here:
// bucket.Stable's own used-bit already tracks liveness, so
// Contains(handle) on the arena answers that question without a
// redundant flag.
type node[T any] struct {
	parentIndex int32
	leftIndex   int32
	rightIndex  int32
	bounds      Bounds
	value       T
	subtreeSize uint32
	isLeaf      bool
}

// BVH is an arena-allocated binary tree with index-only links, a
// secondary open-addressing value->node index, and a readers-writer
// concurrency contract. The zero value is not usable; construct with New.
type BVH[T comparable] struct {
	mu *xsync.RBMutex

	nodes *bucket.Stable[node[T]]

	buckets    []int32
	bucketMask int

	comparer hashutil.Comparer[T]

	rootIndex int32
	leafCount int

	stackPool pool.Provider[*queue.Stack[int32]]
}

// New creates an empty BVH.
func New[T comparable]() *BVH[T] {
	b := &BVH[T]{
		mu:         xsync.NewRBMutex(),
		nodes:      bucket.New[node[T]](),
		buckets:    make([]int32, hashutil.DefaultCapacity),
		bucketMask: hashutil.DefaultCapacity - 1,
		comparer:   hashutil.NewDefaultComparer[T](),
		rootIndex:  absent,
		stackPool:  newStackPool(),
	}
	for i := range b.buckets {
		b.buckets[i] = absent
	}
	return b
}

// Len returns the number of leaves currently stored.
func (b *BVH[T]) Len() int {
	tok := b.mu.RLock()
	defer b.mu.RUnlock(tok)
	return b.leafCount
}

