// Package hashutil provides the shared low-level primitives the hash and
// spatial containers build on: power-of-two sizing, the randomized-rehash
// hash functions, a buffered entropy source, and the pluggable key
// contracts (Comparer, CompareFunc).
package hashutil

import "math/bits"

// DefaultCapacity is the default-capacity floor used by the hash table and
// the BVH bucket index: backing storage is always a power of two, never
// smaller than 8.
const DefaultCapacity = 8

// NextPowerOfTwo rounds n up to the nearest power of two, with a floor of
// DefaultCapacity.
func NextPowerOfTwo(n int) int {
	if n <= DefaultCapacity {
		return DefaultCapacity
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a power of two (n > 0).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
