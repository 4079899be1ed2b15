package dict

// Cursor is a lazy, finite, non-restartable iterator over a table's
// present entries. It snapshots the table's version counter at creation
// and reports ErrConcurrentModification if a structural mutation is
// observed on the next Next() call.
type Cursor[K comparable, V any] struct {
	t       *table[K, V]
	version uint32
	idx     int
	key     K
	value   V
}

// Cursor returns a fresh iterator positioned before the first entry.
func (t *table[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{t: t, version: t.version, idx: -1}
}

// Next advances the cursor to the next present entry. ok is false once
// the table is exhausted. err is ErrConcurrentModification if the table
// was mutated since the cursor was created or since the last Next call.
func (c *Cursor[K, V]) Next() (ok bool, err error) {
	if c.version != c.t.version {
		return false, ErrConcurrentModification
	}
	for c.idx++; c.idx < len(c.t.slots); c.idx++ {
		sl := &c.t.slots[c.idx]
		if sl.used {
			c.key = sl.key
			c.value = sl.value
			return true, nil
		}
	}
	return false, nil
}

// Key returns the current entry's key. Valid only after Next returns true.
func (c *Cursor[K, V]) Key() K { return c.key }

// Value returns the current entry's value. Valid only after Next returns true.
func (c *Cursor[K, V]) Value() V { return c.value }

// All returns every present (key, value) pair as plain slices, a
// convenience for callers that don't need lazy iteration or the explicit
// concurrent-modification signal. It panics with ErrConcurrentModification
// if the table is mutated while the snapshot is being taken, the same
// fail-fast behavior Go's own map type exhibits under concurrent
// iteration and mutation.
func (t *table[K, V]) All() (keys []K, values []V) {
	keys = make([]K, 0, t.count)
	values = make([]V, 0, t.count)
	cur := t.Cursor()
	for {
		ok, err := cur.Next()
		if err != nil {
			panic(err)
		}
		if !ok {
			break
		}
		keys = append(keys, cur.Key())
		values = append(values, cur.Value())
	}
	return keys, values
}
