// Package vec: package-level algorithms over Array storage.
// Sorting, searching, and numeric fills are thin, documented
// delegations to the standard slices machinery over the backing
// storage; they mutate in place and never reallocate, so storage
// identity and length are always preserved.
package vec

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Numeric constrains the element types Iota and Sum operate on: any
// integer or floating-point type, including user-defined ones.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Sort sorts the array in place in ascending order.
// Complexity: O(n log n).
func Sort[T cmp.Ordered](a *Array[T]) {
	slices.Sort(view(a))
}

// SortFunc sorts the array in place using the caller-supplied
// comparison (negative when x orders before y, zero for ties,
// positive otherwise).
// Complexity: O(n log n).
func SortFunc[T any](a *Array[T], compare func(x, y T) int) {
	slices.SortFunc(view(a), compare)
}

// Contains reports whether v is present among the elements.
// Complexity: O(n).
func Contains[T comparable](a *Array[T], v T) bool {
	return slices.Contains(view(a), v)
}

// Index returns the index of the first element equal to v, or -1
// when v is not present.
// Complexity: O(n).
func Index[T comparable](a *Array[T], v T) int {
	return slices.Index(view(a), v)
}

// Iota assigns consecutive values in place: element i receives
// start+i. An empty array is left untouched.
// Complexity: O(n).
func Iota[T Numeric](a *Array[T], start T) {
	s := view(a)
	for i := range s {
		s[i] = start
		start++
	}
}

// Sum returns the sum of all elements, zero for an empty array.
// Complexity: O(n).
func Sum[T Numeric](a *Array[T]) T {
	var total T
	for _, v := range view(a) {
		total += v
	}

	return total
}

// Min returns the smallest element. Calling Min on an empty array is
// a contract violation and panics.
// Complexity: O(n).
func Min[T cmp.Ordered](a *Array[T]) T {
	s := view(a)
	if len(s) == 0 {
		panic(panicMinEmpty)
	}

	return slices.Min(s)
}

// Max returns the largest element. Calling Max on an empty array is a
// contract violation and panics.
// Complexity: O(n).
func Max[T cmp.Ordered](a *Array[T]) T {
	s := view(a)
	if len(s) == 0 {
		panic(panicMaxEmpty)
	}

	return slices.Max(s)
}
