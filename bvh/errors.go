package bvh

import "github.com/pkg/errors"

// Error taxonomy for the BVH engine.
var (
	// ErrInvalidArgument is the invalid-argument error of the taxonomy.
	// No operation in this package returns it; EnsureCapacity ignores
	// n <= 0.
	ErrInvalidArgument = errors.New("bvh: invalid argument")

	// ErrCorruption signals an internal invariant violation: Insert,
	// UpdateBounds and Remove panic with it when a linked node index is
	// not live in the arena. Not expected to occur.
	ErrCorruption = errors.New("bvh: internal invariant violation")
)
