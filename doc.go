// Package fixedvec is your in-memory playground for value-semantic
// container design — one fixed-length array type with deep copies,
// cheap ownership transfer, and a carefully specified error contract.
//
// 🚀 What is fixedvec?
//
//	A small, single-purpose library that gets object lifetime right:
//		• One owning buffer: a fixed-length array of homogeneous elements
//		• Deep copies on Clone, O(1) ownership transfer on Move/Swap
//		• Checked access (errors) and unchecked access (panics) side by side
//		• Value equality and lexicographic ordering for generic code
//		• Sort, search and numeric fills layered over the same storage
//
// ✨ Why choose fixedvec?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every operation documents its invariants
//   - Pure Go – no cgo, no hidden state, the zero value just works
//   - Honest contracts – programmer errors panic, range errors return errors
//
// Under the hood, everything lives in one subpackage:
//
//	vec/ — the Array[T] container, its constructors, access paths,
//	       comparisons, and package-level algorithms
//
// Quick ASCII example:
//
//	    a ──Clone──▶ b        (independent storage, equal contents)
//	    a ──Move───▶ c        (c owns a's storage, a is empty)
//	    a ◀──Swap──▶ d        (headers exchanged in O(1))
//
// Dive into examples/ for runnable walkthroughs of value semantics,
// sorting in place, and the checked-access error path.
//
//	go get github.com/lvlkit/fixedvec/vec
package fixedvec
