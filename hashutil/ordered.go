package hashutil

import "golang.org/x/exp/constraints"

// CompareFunc is a three-way comparator: compare(a,b) in {<0,=0,>0}, a
// total order. list.Sorted takes one of these instead of requiring T to
// satisfy an interface, so callers aren't forced into an Ordered-style
// method set on T. The BVH's balance math compares integer subtree sizes
// directly and takes no CompareFunc.
type CompareFunc[T any] func(a, b T) int

// Natural returns a CompareFunc for any type with a built-in total order
// (golang.org/x/exp/constraints.Ordered), for callers that don't need a
// custom comparator.
func Natural[T constraints.Ordered]() CompareFunc[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
