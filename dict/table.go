// Package dict provides the open-addressing hash core: Dictionary[K,V]
// and Set[K]. Both share one generic probing/resize/rehash engine
// (table[K,V]); Set[K] is simply table[K, struct{}] with the value
// elided from iteration.
//
// Single-writer contract: mutation is not safe for concurrent use. A
// version counter detects structural mutation during iteration.
package dict

import (
	"reflect"

	"github.com/mrdav30/swiftcollections/hashutil"
)

// maxProbeRandomizeThreshold is the probe-length trigger for the
// anti-collision-flooding escape hatch: once a probe chain this long is
// observed, the table assumes an adversarial key set and swaps in a
// randomized comparer.
const maxProbeRandomizeThreshold = 100

// movingHighWatermark / movingLowWatermark are the adaptive-growth moving
// average thresholds that steer the post-resize growth factor between
// doubling and quadrupling.
const (
	movingHighWatermark = 0.30
	movingLowWatermark  = 0.28
)

type slot[K any, V any] struct {
	hash  int32
	key   K
	value V
	used  bool
}

// table is the shared open-addressing engine behind Dictionary and Set.
type table[K comparable, V any] struct {
	slots             []slot[K, V]
	mask              int
	count             int
	highWater         int // highest slot index ever written since last rebuild
	comparer          hashutil.Comparer[K]
	resizeFactor      int
	movingFillRate    float64
	movingSeeded      bool
	nextResizeCount   int
	maxProbeSteps     int
	version           uint32
	loadFactorCeiling float64
}

func newTable[K comparable, V any](loadFactorCeiling float64) *table[K, V] {
	t := &table[K, V]{
		slots:             make([]slot[K, V], hashutil.DefaultCapacity),
		mask:              hashutil.DefaultCapacity - 1,
		comparer:          hashutil.NewDefaultComparer[K](),
		resizeFactor:      2,
		loadFactorCeiling: loadFactorCeiling,
	}
	t.nextResizeCount = int(float64(len(t.slots)) * loadFactorCeiling)
	return t
}

func isNilKey[K comparable](k K) bool {
	var zero K
	if k != zero {
		return false
	}
	switch reflect.TypeOf(&zero).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// probeStart returns the initial probe index for a normalized hash.
func (t *table[K, V]) probeStart(h int32) int {
	return int(h) & t.mask
}

// nextProbe advances the quadratic probe sequence: i_k = (i_{k-1}+k^2) mod len.
func (t *table[K, V]) nextProbe(idx, k int) int {
	return (idx + k*k) & t.mask
}

// insertSlot places (key, value) assuming the key is not already present and
// the table has room; used both by Insert (after a duplicate check) and
// by rebuild/rehash (where uniqueness is already guaranteed). Returns the
// probe displacement it took.
func (t *table[K, V]) insertSlot(h int32, key K, value V) int {
	idx := t.probeStart(h)
	displacement := 0
	for k := 1; ; k++ {
		sl := &t.slots[idx]
		if !sl.used {
			sl.hash = h
			sl.key = key
			sl.value = value
			sl.used = true
			t.count++
			if idx > t.highWater {
				t.highWater = idx
			}
			return displacement
		}
		idx = t.nextProbe(idx, k)
		displacement++
		if displacement > len(t.slots) {
			panic(ErrCorruption)
		}
	}
}

// Insert adds key/value if key is not already present. Returns
// (true, nil) on insertion, (false, nil) if key was already present, or
// (false, ErrInvalidKey) for a nil key.
func (t *table[K, V]) Insert(key K, value V) (bool, error) {
	if isNilKey(key) {
		return false, ErrInvalidKey
	}
	// The probe loop below stops at the first unused slot, tombstones
	// included, so an existing entry further along the chain is found first.
	if _, ok := t.find(key); ok {
		return false, nil
	}

	t.maybeGrow()

	h := t.comparer.Hash(key) & 0x7FFFFFFF
	idx := t.probeStart(h)
	displacement := 0
	for k := 1; ; k++ {
		sl := &t.slots[idx]
		if !sl.used {
			sl.hash = h
			sl.key = key
			sl.value = value
			sl.used = true
			t.count++
			t.version++
			if idx > t.highWater {
				t.highWater = idx
			}
			t.recordProbe(displacement)
			return true, nil
		}
		if sl.hash == h && t.comparer.Equal(sl.key, key) {
			t.recordProbe(displacement)
			return false, nil
		}
		idx = t.nextProbe(idx, k)
		displacement++
		if displacement > len(t.slots) {
			panic(ErrCorruption)
		}
	}
}

// find locates the slot index holding key, if any.
func (t *table[K, V]) find(key K) (int, bool) {
	if isNilKey(key) {
		return 0, false
	}
	h := t.comparer.Hash(key) & 0x7FFFFFFF
	idx := t.probeStart(h)
	for k := 1; ; k++ {
		sl := &t.slots[idx]
		if !sl.used && sl.hash != -1 {
			return 0, false
		}
		if sl.used && sl.hash == h && t.comparer.Equal(sl.key, key) {
			return idx, true
		}
		idx = t.nextProbe(idx, k)
		if k > len(t.slots) {
			return 0, false
		}
	}
}

// Get returns the value for key, if present.
func (t *table[K, V]) Get(key K) (V, bool) {
	if idx, ok := t.find(key); ok {
		return t.slots[idx].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *table[K, V]) Contains(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Remove deletes key if present, tombstoning its slot.
func (t *table[K, V]) Remove(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}
	sl := &t.slots[idx]
	var zeroK K
	var zeroV V
	sl.key = zeroK
	sl.value = zeroV
	sl.hash = -1
	sl.used = false
	t.count--
	t.version++
	return true
}

// Clear empties the table, keeping its current backing capacity.
func (t *table[K, V]) Clear() {
	t.slots = make([]slot[K, V], len(t.slots))
	t.count = 0
	t.highWater = 0
	t.maxProbeSteps = 0
	t.version++
}

// Len returns the number of present entries.
func (t *table[K, V]) Len() int { return t.count }

// Version returns the current mutation counter, for iterator snapshots.
func (t *table[K, V]) Version() uint32 { return t.version }

// recordProbe tracks the longest probe chain seen and fires the
// anti-collision-flooding escape hatch once it exceeds the threshold and
// the comparer isn't already randomized.
func (t *table[K, V]) recordProbe(displacement int) {
	if displacement > t.maxProbeSteps {
		t.maxProbeSteps = displacement
	}
	if t.maxProbeSteps > maxProbeRandomizeThreshold && !t.comparer.Randomized() {
		t.comparer = hashutil.NewRandomizedComparer[K]()
		t.rehashInPlace()
		t.maxProbeSteps = 0
	}
}

// rehashInPlace recomputes every live entry's hash with the (just
// installed) new comparer and reinserts at the same capacity. Unlike a
// plain resize, this must recompute user hashes, since the comparer
// itself changed.
func (t *table[K, V]) rehashInPlace() {
	type kv struct {
		key K
		val V
	}
	live := make([]kv, 0, t.count)
	for i := 0; i <= t.highWater && i < len(t.slots); i++ {
		if t.slots[i].used {
			live = append(live, kv{t.slots[i].key, t.slots[i].value})
		}
	}
	t.slots = make([]slot[K, V], len(t.slots))
	t.highWater = 0
	t.count = 0
	for _, e := range live {
		h := t.comparer.Hash(e.key) & 0x7FFFFFFF
		t.insertSlot(h, e.key, e.val)
	}
}
