// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: size queries, lifetime management, and ownership transfer.
// Determinism:
//   - Swap is the single ownership-transfer primitive; CopyFrom,
//     MoveFrom and Move are built on it, never on ad-hoc pointer
//     juggling, so transfer semantics live in exactly one place.

package vec

import (
	"fmt"
	"slices"
	"strings"
)

// Len returns the number of elements.
// Complexity: O(1).
func (a *Array[T]) Len() int {
	return len(a.data) // the handle carries the length
}

// Empty reports whether the array holds no elements.
// Complexity: O(1).
func (a *Array[T]) Empty() bool {
	return len(a.data) == 0
}

// Clear resets the array to the empty state, releasing the backing
// storage to the collector. The result is indistinguishable from a
// freshly constructed zero value. Idempotent.
// Complexity: O(1).
func (a *Array[T]) Clear() {
	a.data = nil
}

// Fill assigns v to every element in place. Length is unchanged.
// Complexity: O(n).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Reverse reverses the element order in place.
// Complexity: O(n).
func (a *Array[T]) Reverse() {
	slices.Reverse(a.data)
}

// Swap exchanges the contents and storage ownership of a and b in
// constant time: only the two headers move. It never allocates, never
// copies elements, and never fails.
// Complexity: O(1).
func (a *Array[T]) Swap(b *Array[T]) {
	a.data, b.data = b.data, a.data
}

// Swap exchanges the contents of a and b. It delegates to the member
// version; the free form exists for symmetry with generic code that
// expects a swappable pair.
// Complexity: O(1).
func Swap[T any](a, b *Array[T]) {
	a.Swap(b)
}

// Clone returns a deep copy of the array: fresh storage and an
// element-wise copy, so the clone and the source never alias. The
// clone of an empty array is empty with no storage. Elements are
// copied by assignment; if T contains pointers, the pointees are
// shared, exactly as with any Go value copy.
// Complexity: O(n) time and memory.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{data: copyElems(a.data)}
}

// Move transfers ownership of the backing storage into a new Array
// and leaves a empty. No element storage is allocated and no element
// is copied; the storage identity is preserved in the result.
// Complexity: O(1).
func (a *Array[T]) Move() *Array[T] {
	out := &Array[T]{}
	out.Swap(a) // the one transfer primitive

	return out
}

// CopyFrom replaces a's contents with an independent copy of src via
// clone-and-swap: the replacement is fully constructed first, then
// exchanged into place, and the displaced state is released by the
// collector. One code path serves every assignment, a is untouched
// until the exchange, and self-assignment is safe without a special
// check.
// Complexity: O(src.Len()) time and memory.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	tmp := src.Clone()
	a.Swap(tmp)
}

// MoveFrom takes ownership of src's contents and leaves src empty;
// a's displaced contents are released. Moving an array into itself is
// a no-op.
// Complexity: O(1).
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.Swap(src)
	src.Clear() // drop a's old state; src ends empty
}

// Slice returns the backing storage as a borrowed, mutable view: the
// contiguous window over all elements, in order. Ranging over the
// view of an empty array performs zero iterations.
//
// The view is valid until the owner is cleared, reassigned, moved
// out, or swapped; after that it references storage the array no
// longer owns. It is a window, not a second owner.
// Complexity: O(1).
func (a *Array[T]) Slice() []T {
	return a.data
}

// String implements fmt.Stringer, rendering elements as "[e0, e1, …]".
// Complexity: O(n).
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range a.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')

	return sb.String()
}
