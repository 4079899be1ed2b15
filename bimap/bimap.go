// Package bimap provides a bidirectional map: a pair of dictionaries kept
// in lockstep so that forward and reverse lookups are always each
// other's inverse. It composes two *dict.Dictionary instances rather
// than hand-rolling a second probing engine.
package bimap

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/mrdav30/swiftcollections/dict"
)

// ErrDuplicateValue is returned by Insert when the reverse side is
// already occupied by a different key. Insert fails hard in this case
// rather than attempting an update.
var ErrDuplicateValue = errors.New("bimap: value already mapped from a different key")

// BiMap is a pair of hash tables (forward A→B, reverse B→A) maintaining
// the invariant forward[a] = b iff reverse[b] = a. A single mutex
// serializes both halves of every mutation so a reader that inspects
// both sides never observes a half-linked state.
type BiMap[A comparable, B comparable] struct {
	mu      sync.Mutex
	forward *dict.Dictionary[A, B]
	reverse *dict.Dictionary[B, A]
}

// New creates an empty BiMap.
func New[A comparable, B comparable]() *BiMap[A, B] {
	return &BiMap[A, B]{
		forward: dict.New[A, B](),
		reverse: dict.New[B, A](),
	}
}

// Insert adds the pair (a, b) if both sides are free. Returns
// ErrDuplicateValue if b already maps from some other a, leaving the map
// unchanged. Returns dict's ErrInvalidKey unchanged if a or b is nil.
func (m *BiMap[A, B]) Insert(a A, b B) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existingA, ok := m.reverse.Get(b); ok && existingA != a {
		return false, ErrDuplicateValue
	}

	inserted, err := m.forward.Insert(a, b)
	if err != nil || !inserted {
		return false, err
	}
	if _, err := m.reverse.Insert(b, a); err != nil {
		// Reverse side rejected after forward accepted (b is a nil
		// key): undo, to keep the cross-invariant intact.
		m.forward.Remove(a)
		return false, err
	}
	return true, nil
}

// Remove deletes a (and its paired value) if present.
func (m *BiMap[A, B]) Remove(a A) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.forward.Get(a)
	if !ok {
		return false
	}
	m.forward.Remove(a)
	m.reverse.Remove(b)
	return true
}

// Forward returns the value mapped from a, if any.
func (m *BiMap[A, B]) Forward(a A) (B, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forward.Get(a)
}

// Reverse returns the key mapped from b, if any: the symmetric lookup
// to Forward.
func (m *BiMap[A, B]) Reverse(b B) (A, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reverse.Get(b)
}

// ContainsForward reports whether a is a known key.
func (m *BiMap[A, B]) ContainsForward(a A) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forward.Contains(a)
}

// ContainsReverse reports whether b is a known value.
func (m *BiMap[A, B]) ContainsReverse(b B) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reverse.Contains(b)
}

// Len returns the number of pairs currently stored.
func (m *BiMap[A, B]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forward.Len()
}

// Clear removes every pair, keeping both sides' current backing capacity.
func (m *BiMap[A, B]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward.Clear()
	m.reverse.Clear()
}

// EnsureCapacity pre-grows both underlying tables so n pairs can be
// inserted without a further resize on either side.
func (m *BiMap[A, B]) EnsureCapacity(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward.EnsureCapacity(n)
	m.reverse.EnsureCapacity(n)
}
