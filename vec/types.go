// SPDX-License-Identifier: MIT

// Package vec: core type, sentinel errors, and panic messages.
// This file declares the Array container, the single recoverable
// sentinel error, and the stable panic messages used for contract
// violations (programmer errors).
package vec

import "errors"

// Sentinel errors for vec operations.
var (
	// ErrIndexOutOfRange indicates a checked accessor (At, SetAt) was
	// called with an index outside [0, Len()). The container state is
	// never disturbed by a failed checked access.
	ErrIndexOutOfRange = errors.New("vec: index out of range")
)

// Stable panic messages for contract violations (no magic strings).
// These paths are programmer errors by contract: they must never be
// reached by correct callers, and they panic rather than return.
const (
	panicNegativeLength = "vec: length must be non-negative"
	panicGetOutOfRange  = "vec: Get: index out of range"
	panicSetOutOfRange  = "vec: Set: index out of range"
	panicFrontEmpty     = "vec: Front: empty array"
	panicBackEmpty      = "vec: Back: empty array"
	panicMinEmpty       = "vec: Min: empty array"
	panicMaxEmpty       = "vec: Max: empty array"
)

// Array is a generic, value-semantic, fixed-length array.
//
// The zero value is the valid empty array: length 0 and no backing
// storage. A non-empty Array owns its backing block exclusively; see
// the package documentation for the ownership model.
//
// Array values are handles. Pass *Array to share one container;
// use Clone to obtain an independent one. Copying an Array value with
// `=` duplicates the slice header, not the elements.
type Array[T any] struct {
	// data is the owning handle to the backing storage.
	// Invariant: data is non-nil iff len(data) > 0. Length is fixed at
	// construction; only Clear, Swap, Move*, and CopyFrom replace it.
	data []T
}
