package list

import "github.com/mrdav30/swiftcollections/hashutil"

// Sorted is a centered-array sorted sequence: the backing array carries
// slack on both sides of the live elements so an insert near either end
// only shifts the nearer side, giving amortized O(sqrt-ish in practice,
// worst-case O(n)) inserts instead of always shifting the whole tail the
// way a plain sorted slice would.
//
// PopMin's head-advance intentionally just increments offset by one: an
// earlier reference implementation had a self-assignment here that was
// observably a no-op on one branch; advancing by one on every pop is the
// evident intent and what's implemented here.
type Sorted[T any] struct {
	buf    []T
	offset int
	count  int
	cmp    hashutil.CompareFunc[T]
}

// NewSorted creates an empty Sorted list ordered by cmp.
func NewSorted[T any](cmp hashutil.CompareFunc[T]) *Sorted[T] {
	return &Sorted[T]{cmp: cmp}
}

// Len returns the number of elements.
func (s *Sorted[T]) Len() int { return s.count }

// PeekMin returns the smallest element without removing it.
func (s *Sorted[T]) PeekMin() (v T, ok bool) {
	if s.count == 0 {
		return v, false
	}
	return s.buf[s.offset], true
}

// PeekMax returns the largest element without removing it.
func (s *Sorted[T]) PeekMax() (v T, ok bool) {
	if s.count == 0 {
		return v, false
	}
	return s.buf[s.offset+s.count-1], true
}

// PopMin removes and returns the smallest element.
func (s *Sorted[T]) PopMin() (v T, ok bool) {
	if s.count == 0 {
		return v, false
	}
	v = s.buf[s.offset]
	var zero T
	s.buf[s.offset] = zero
	s.offset++
	s.count--
	return v, true
}

// PopMax removes and returns the largest element.
func (s *Sorted[T]) PopMax() (v T, ok bool) {
	if s.count == 0 {
		return v, false
	}
	last := s.offset + s.count - 1
	v = s.buf[last]
	var zero T
	s.buf[last] = zero
	s.count--
	return v, true
}

// At returns the i-th smallest element (0-indexed).
func (s *Sorted[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= s.count {
		return v, false
	}
	return s.buf[s.offset+i], true
}

// search returns the index (into the live range [0, count)) of the first
// element not less than v, via binary search over the comparator.
func (s *Sorted[T]) search(v T) int {
	lo, hi := 0, s.count
	for lo < hi {
		mid := (lo + hi) / 2
		if s.cmp(s.buf[s.offset+mid], v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Insert adds v, keeping the sequence sorted. Duplicates are allowed and
// inserted after existing equal elements.
func (s *Sorted[T]) Insert(v T) {
	pos := s.search(v)
	// search returns the first element >= v; advance past equal elements
	// so duplicates land in stable insertion order.
	for pos < s.count && s.cmp(s.buf[s.offset+pos], v) == 0 {
		pos++
	}
	s.insertAt(pos, v)
}

// insertAt shifts whichever side of pos is cheaper (and has room). pos
// is relative to the live range, i.e. 0 <= pos <= count.
func (s *Sorted[T]) insertAt(pos int, v T) {
	if !s.hasRoomFor(pos) {
		s.recenter(len(s.buf)*2 + hashutil.DefaultCapacity)
	}

	hasFrontRoom := s.offset > 0
	hasBackRoom := s.offset+s.count < len(s.buf)
	prefersFront := pos <= s.count/2

	if (prefersFront && hasFrontRoom) || (!hasBackRoom && hasFrontRoom) {
		// shift [offset, offset+pos) left by one
		copy(s.buf[s.offset-1:s.offset-1+pos], s.buf[s.offset:s.offset+pos])
		s.offset--
		s.buf[s.offset+pos] = v
		s.count++
		return
	}

	// shift the back half right by one
	end := s.offset + s.count
	copy(s.buf[s.offset+pos+1:end+1], s.buf[s.offset+pos:end])
	s.buf[s.offset+pos] = v
	s.count++
}

// hasRoomFor reports whether at least one side has a free slot to shift
// into for an insert at pos.
func (s *Sorted[T]) hasRoomFor(int) bool {
	hasFrontRoom := s.offset > 0
	hasBackRoom := s.offset+s.count < len(s.buf)
	return hasFrontRoom || hasBackRoom
}

// recenter reallocates the backing array to newCap, re-centering the
// live elements with equal slack on both sides.
func (s *Sorted[T]) recenter(newCap int) {
	if newCap < s.count {
		newCap = s.count
	}
	if newCap == 0 {
		newCap = hashutil.DefaultCapacity
	}
	slack := (newCap - s.count) / 2
	buf := make([]T, newCap)
	copy(buf[slack:slack+s.count], s.buf[s.offset:s.offset+s.count])
	s.buf = buf
	s.offset = slack
}

// Clear empties the list without shrinking its backing capacity.
func (s *Sorted[T]) Clear() {
	var zero T
	for i := 0; i < s.count; i++ {
		s.buf[s.offset+i] = zero
	}
	s.offset = 0
	s.count = 0
}

// Slice returns the live elements in sorted order as a freshly allocated
// slice.
func (s *Sorted[T]) Slice() []T {
	out := make([]T, s.count)
	copy(out, s.buf[s.offset:s.offset+s.count])
	return out
}
