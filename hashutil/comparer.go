package hashutil

import (
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Comparer derives a deterministic hash consistent with Equal.
// Implementations must be side-effect-free. Randomized reports whether
// this comparer already carries anti-flooding entropy, so a hash table
// can avoid swapping comparers twice.
type Comparer[K comparable] interface {
	Hash(k K) int32
	Equal(a, b K) bool
	Randomized() bool
}

// defaultHash picks a fast path for common key kinds, falling back to a
// string encoding hashed with xxhash for everything else, instead of
// reflecting on every call.
func defaultHash[K comparable](k K) int32 {
	switch v := any(k).(type) {
	case string:
		return int32(xxhash.Sum64String(v)) //nolint:gosec // truncation is intentional, masked by caller
	case int:
		return hashInt64(int64(v))
	case int64:
		return hashInt64(v)
	case int32:
		return hashInt64(int64(v))
	case uint:
		return hashInt64(int64(v)) //nolint:gosec // intentional reinterpretation for hashing
	case uint64:
		return hashInt64(int64(v)) //nolint:gosec // intentional reinterpretation for hashing
	case uint32:
		return hashInt64(int64(v))
	case fmt.Stringer:
		return int32(xxhash.Sum64String(v.String()))
	default:
		return int32(xxhash.Sum64String(fmt.Sprintf("%v", k)))
	}
}

// hashInt64 folds a 64-bit integer down to 32 bits via xxhash over its
// 8-byte little-endian form, rather than a naive XOR-fold, to keep
// sequential integer keys from clustering in the low bits.
func hashInt64(v int64) int32 {
	var buf [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	return int32(xxhash.Sum64(buf[:]))
}

// defaultComparer is the ecosystem-default comparer installed on every new
// Dictionary/Set until a randomized-rehash event swaps it out.
type defaultComparer[K comparable] struct{}

// NewDefaultComparer returns the default (non-randomized) comparer for K.
func NewDefaultComparer[K comparable]() Comparer[K] {
	return defaultComparer[K]{}
}

func (defaultComparer[K]) Hash(k K) int32     { return defaultHash(k) }
func (defaultComparer[K]) Equal(a, b K) bool  { return a == b }
func (defaultComparer[K]) Randomized() bool   { return false }

// randomizedObjectComparer XORs the default hash with a 32-bit entropy
// value drawn at construction, so a flooding attacker who doesn't know
// the seed can no longer predict collisions.
type randomizedObjectComparer[K comparable] struct {
	seed int32
}

// randomizedStringComparer re-hashes string keys with MurmurHash3 seeded
// from entropy. K is asserted to be string-shaped by the caller before
// this is installed; the unsafe reinterpretation is safe because K's
// memory layout matches string exactly when the caller has verified
// `any(zero).(string)` succeeds.
type randomizedStringComparer[K comparable] struct {
	seed uint32
}

func (c randomizedObjectComparer[K]) Hash(k K) int32 {
	return defaultHash(k) ^ c.seed
}
func (randomizedObjectComparer[K]) Equal(a, b K) bool { return a == b }
func (randomizedObjectComparer[K]) Randomized() bool  { return true }

func (c randomizedStringComparer[K]) Hash(k K) int32 {
	s := *(*string)(unsafe.Pointer(&k))
	return int32(Murmur3String(s, c.seed) & 0x7FFFFFFF)
}
func (randomizedStringComparer[K]) Equal(a, b K) bool { return a == b }
func (randomizedStringComparer[K]) Randomized() bool  { return true }

// IsStringKey reports whether K is instantiated as string.
// NewRandomizedComparer uses this to decide which randomized comparer
// variant to install.
func IsStringKey[K comparable]() bool {
	var zero K
	_, ok := any(zero).(string)
	return ok
}

// NewRandomizedComparer installs the anti-flooding comparer appropriate
// for K, seeded from the process entropy source. Callers must check
// !Randomized() on the current comparer before calling this, so a
// comparer is never swapped for another randomized one.
func NewRandomizedComparer[K comparable]() Comparer[K] {
	e := Entropy()
	if IsStringKey[K]() {
		return randomizedStringComparer[K]{seed: uint32(e & 0x7FFFFFFF)}
	}
	return randomizedObjectComparer[K]{seed: int32(e)} //nolint:gosec // intentional truncation for XOR mixing
}
