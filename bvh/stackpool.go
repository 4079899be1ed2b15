package bvh

import (
	"github.com/mrdav30/swiftcollections/pool"
	"github.com/mrdav30/swiftcollections/queue"
)

// newStackPool builds the BVH's thread-local, reusable traversal-stack
// collaborator on top of the generic pool.Provider contract, rather than
// reaching for sync.Pool directly, so the stack's reuse/reset policy
// stays consistent with every other poolable scratch instance.
func newStackPool() pool.Provider[*queue.Stack[int32]] {
	return pool.New(
		func() *queue.Stack[int32] { return queue.NewStack[int32](64) },
		func(s *queue.Stack[int32]) { s.Clear() },
	)
}
