// Package vec: element access.
// Two access paths with different contracts, never mixed: the checked
// path (At, SetAt) reports ErrIndexOutOfRange for indices the caller
// could not know to be valid; the unchecked path (Get, Set, Front,
// Back) treats an invalid call as a contract violation and panics.
package vec

import "fmt"

// Method name constants for unified error wrapping.
const (
	opAt    = "At"
	opSetAt = "SetAt"
)

// accessErrorf wraps ErrIndexOutOfRange with method context, the
// offending index, and the current length.
func accessErrorf(method string, index, length int) error {
	return fmt.Errorf("vec: Array.%s(%d): len %d: %w", method, index, length, ErrIndexOutOfRange)
}

// checkIndex validates 0 ≤ i < Len() for the checked accessors.
// Stage 1 (Validate): bounds check against the current length.
// Stage 2 (Finalize): nil on success, wrapped sentinel otherwise.
// Complexity: O(1).
func (a *Array[T]) checkIndex(method string, i int) error {
	if i < 0 || i >= len(a.data) {
		return accessErrorf(method, i, len(a.data))
	}

	return nil
}

// At retrieves the element at index i through the checked path.
// A failed access reports ErrIndexOutOfRange (wrapped with context)
// and never disturbs the container.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if err := a.checkIndex(opAt, i); err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// SetAt assigns v at index i through the checked path.
// A failed access reports ErrIndexOutOfRange (wrapped with context)
// and never disturbs the container.
// Complexity: O(1).
func (a *Array[T]) SetAt(i int, v T) error {
	if err := a.checkIndex(opSetAt, i); err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// Get returns the element at index i through the unchecked path.
// An out-of-range index is a contract violation and panics; reach for
// At when the index is not known to be valid.
// Complexity: O(1).
func (a *Array[T]) Get(i int) T {
	if i < 0 || i >= len(a.data) {
		panic(panicGetOutOfRange)
	}

	return a.data[i]
}

// Set assigns v at index i through the unchecked path.
// An out-of-range index is a contract violation and panics; reach for
// SetAt when the index is not known to be valid.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) {
	if i < 0 || i >= len(a.data) {
		panic(panicSetOutOfRange)
	}
	a.data[i] = v
}

// Front returns the first element. Calling Front on an empty array is
// a contract violation and panics.
// Complexity: O(1).
func (a *Array[T]) Front() T {
	if len(a.data) == 0 {
		panic(panicFrontEmpty)
	}

	return a.data[0]
}

// Back returns the last element. Calling Back on an empty array is a
// contract violation and panics.
// Complexity: O(1).
func (a *Array[T]) Back() T {
	if len(a.data) == 0 {
		panic(panicBackEmpty)
	}

	return a.data[len(a.data)-1]
}
