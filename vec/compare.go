// Package vec: equality and lexicographic ordering.
// The container accepts any T; equality and ordering demand more
// (comparable, cmp.Ordered), so they are package-level functions with
// tighter constraints, in the shape of the standard slices package.
// The *Func variants serve element types that satisfy neither.
package vec

import (
	"cmp"
	"slices"
)

// view returns a's elements, treating a nil *Array as empty.
func view[T any](a *Array[T]) []T {
	if a == nil {
		return nil
	}

	return a.data
}

// Equal reports whether a and b have the same length and element-wise
// equal values in order. A nil *Array compares as empty.
// Complexity: O(n).
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(view(a), view(b))
}

// EqualFunc is Equal with a caller-supplied element equality, for
// element types that are not comparable.
// Complexity: O(n).
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(view(a), view(b), eq)
}

// Compare orders a and b lexicographically over their elements:
// 0 when the arrays are equal, -1 when a orders first, +1 when b
// orders first. A strict prefix orders before the longer sequence.
// A nil *Array compares as empty.
// Complexity: O(min(a.Len(), b.Len())).
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(view(a), view(b))
}

// CompareFunc is Compare with a caller-supplied element comparison,
// for element types without a total order of their own.
// Complexity: O(min(a.Len(), b.Len())).
func CompareFunc[T any](a, b *Array[T], compare func(T, T) int) int {
	return slices.CompareFunc(view(a), view(b), compare)
}

// Less reports whether a orders lexicographically before b.
// Complexity: O(min(a.Len(), b.Len())).
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}
