// Package list provides two conventional flat containers: a growable
// Array and a centered-array Sorted list. Both are deliberately thin;
// the non-trivial engineering in this module lives in dict and bvh.
package list

import "github.com/pkg/errors"

// ErrIndexOutOfRange is returned by indexed access/removal outside
// [0, Len()).
var ErrIndexOutOfRange = errors.New("list: index out of range")

// Array is a conventional growable sequence.
type Array[T any] struct {
	data []T
}

// NewArray creates an empty Array with the given initial capacity hint.
func NewArray[T any](capacityHint int) *Array[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Array[T]{data: make([]T, 0, capacityHint)}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Add appends v to the end.
func (a *Array[T]) Add(v T) {
	a.data = append(a.data, v)
}

// AddRange appends every element of vs, in order.
func (a *Array[T]) AddRange(vs []T) {
	a.data = append(a.data, vs...)
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.data) {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", i, len(a.data))
	}
	return a.data[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", i, len(a.data))
	}
	a.data[i] = v
	return nil
}

// RemoveAt removes the element at index i, shifting later elements down.
func (a *Array[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(a.data) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", i, len(a.data))
	}
	a.data = append(a.data[:i], a.data[i+1:]...)
	return nil
}

// IndexOf returns the index of the first element equal to v under eq, or
// -1 if none matches.
func (a *Array[T]) IndexOf(v T, eq func(a, b T) bool) int {
	for i, x := range a.data {
		if eq(x, v) {
			return i
		}
	}
	return -1
}

// Clear empties the array without shrinking its backing capacity.
func (a *Array[T]) Clear() {
	a.data = a.data[:0]
}

// Slice returns the live elements as a plain slice. The returned slice
// aliases the Array's backing storage and must not be retained across
// further mutation.
func (a *Array[T]) Slice() []T { return a.data }
