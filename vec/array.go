// Package vec: constructors.
// Dense construction paths for the Array container. Every constructor
// copies its input; none of them ever adopts caller-owned storage.
package vec

// copyElems duplicates src into fresh storage, preserving the
// nil-when-empty invariant (an empty array carries a nil handle).
// Complexity: O(len(src)).
func copyElems[T any](src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)

	return dst
}

// New creates an Array of exactly n zero-value elements.
// Stage 1 (Validate): n must be non-negative; a negative n is a
// contract violation and panics.
// Stage 2 (Prepare): allocate the backing block (none when n == 0).
// Stage 3 (Finalize): return the new Array.
// Complexity: O(n) time and memory.
func New[T any](n int) *Array[T] {
	// Validate length
	if n < 0 {
		panic(panicNegativeLength)
	}
	// Empty arrays never allocate
	if n == 0 {
		return &Array[T]{}
	}

	// Zero-value initialization of all n elements is Go's guarantee.
	return &Array[T]{data: make([]T, n)}
}

// Filled creates an Array of n slots, every one assigned value v.
// The fill completes before the array is returned, so a Filled array
// is never observable in a partially assigned state.
// Complexity: O(n) time and memory.
func Filled[T any](n int, v T) *Array[T] {
	a := New[T](n)
	a.Fill(v)

	return a
}

// Of creates an Array holding vals in order.
//
// The variadic slice is copied, never adopted: Of(s...) leaves the
// caller's s fully independent of the new array.
// Complexity: O(len(vals)).
func Of[T any](vals ...T) *Array[T] {
	return &Array[T]{data: copyElems(vals)}
}

// FromSlice creates an Array holding a copy of s in order.
// Mutating s afterwards does not affect the array, and vice versa.
// Complexity: O(len(s)).
func FromSlice[T any](s []T) *Array[T] {
	return &Array[T]{data: copyElems(s)}
}
