package dict

import "github.com/mrdav30/swiftcollections/hashutil"

// maybeGrow resizes before an insert if the load-factor ceiling would
// otherwise be breached, then updates resize_factor from a moving average
// of the post-resize fill rate, so a table that tends to fill back up
// quickly grows more aggressively on its next resize.
func (t *table[K, V]) maybeGrow() {
	if t.count < t.nextResizeCount {
		return
	}

	newLen := len(t.slots) * t.resizeFactor
	t.resizeTo(newLen)

	fillRate := float64(t.count) / float64(newLen)
	if !t.movingSeeded {
		t.movingFillRate = fillRate
		t.movingSeeded = true
	} else {
		t.movingFillRate = 0.7*t.movingFillRate + 0.3*fillRate
	}

	switch {
	case t.movingFillRate > movingHighWatermark:
		t.resizeFactor = 2
	case t.movingFillRate < movingLowWatermark:
		t.resizeFactor = 4
	}

	t.nextResizeCount = int(float64(newLen) * t.loadFactorCeiling)
}

// resizeTo reallocates the slot array to newLen and reinserts every live
// entry, recomputing only the masked bucket from the stored hash (not
// the user hash, since the comparer hasn't changed).
func (t *table[K, V]) resizeTo(newLen int) {
	old := t.slots
	highWater := t.highWater

	t.slots = make([]slot[K, V], newLen)
	t.mask = newLen - 1
	t.highWater = 0
	t.count = 0

	for i := 0; i <= highWater && i < len(old); i++ {
		sl := &old[i]
		if sl.used {
			t.insertSlot(sl.hash, sl.key, sl.value)
		}
	}
}

// EnsureCapacity pre-grows the table so it can hold n entries without a
// further resize, if it wouldn't already.
func (t *table[K, V]) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	target := hashutil.NextPowerOfTwo(int(float64(n)/t.loadFactorCeiling) + 1)
	if target <= len(t.slots) {
		return
	}
	t.resizeTo(target)
	t.nextResizeCount = int(float64(target) * t.loadFactorCeiling)
}

// TrimExcess shrinks the table to the smallest power-of-two capacity
// (floor hashutil.DefaultCapacity) that still fits count entries under
// the load-factor ceiling. A no-op if that wouldn't shrink anything.
func (t *table[K, V]) TrimExcess() {
	target := hashutil.NextPowerOfTwo(int(float64(t.count)/t.loadFactorCeiling) + 1)
	if target >= len(t.slots) {
		return
	}
	t.resizeTo(target)
	t.nextResizeCount = int(float64(target) * t.loadFactorCeiling)
}
