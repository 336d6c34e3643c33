// Package vec implements Array, a generic, value-semantic, fixed-length
// array container: a single owning buffer of homogeneous elements with
// deep-copy semantics on Clone, O(1) ownership transfer on Move and
// Swap, and an explicit two-tier error contract for element access.
//
// The container is fixed-size after construction — it is not a growable
// vector. There is no append, no reallocation, no capacity distinct
// from length. What the package is careful about instead is lifetime:
// who owns the backing storage, when two arrays may share it (never,
// unless you ask for a view), and what every operation guarantees when
// it fails.
//
// Ownership model:
//
//	– Exactly one live Array owns a given backing block. Constructors
//	  copy their input, Clone allocates fresh storage, and Move/Swap
//	  transfer ownership leaving the source empty. Two independent
//	  arrays never alias (mutate one, the other is untouched).
//	– Slice() hands out the backing storage as a borrowed view. The
//	  view is valid until the owner is cleared, reassigned, moved out,
//	  or swapped; it is a window, not a second owner.
//	– Copying an Array value with plain `=` copies the slice header,
//	  producing an alias, exactly as it does for built-in slices. Use
//	  Clone for an independent copy; keep handles as *Array otherwise.
//
// Invariants:
//
//	– storage is non-nil if and only if Len() > 0; the zero value
//	  Array[T]{} is the valid, allocation-free empty array.
//	– all Len() elements are initialized values of T.
//	– Swap is the only ownership-transfer primitive; CopyFrom, MoveFrom
//	  and Move are built on it, so assignment is strongly safe and
//	  self-assignment needs no special casing.
//
// Error contract (two tiers, never mixed):
//
//	– Recoverable range errors: At and SetAt report ErrIndexOutOfRange
//	  (wrapped with the method name and offending index) and leave the
//	  container untouched.
//	– Contract violations: Get, Set, Front, Back, Min and Max panic on
//	  out-of-range or empty-container use, and constructors panic on a
//	  negative length. These are caller bugs, not runtime conditions.
//
// Complexity:
//
//	– Len, Empty, Front, Back, Get, Set, At, SetAt, Swap, Move: O(1)
//	– Clone, CopyFrom, Equal, Compare, Fill, Iota, Sum, Contains: O(n)
//	– Sort: O(n log n)
//
// Example usage:
//
//	a := vec.Of(5, 4, 3, 2, 1)
//	b := a.Clone()   // independent deep copy
//	vec.Sort(a)      // a: [1, 2, 3, 4, 5]; b unchanged
//	v, err := a.At(9)
//	if err != nil {
//	    // errors.Is(err, vec.ErrIndexOutOfRange) == true
//	}
//	_ = v
package vec
