// compare_test.go — equality and lexicographic ordering across arrays.
package vec_test

import (
	"cmp"
	"strings"
	"testing"

	"github.com/lvlkit/fixedvec/vec"
	"github.com/stretchr/testify/require"
)

// TestEqual verifies element-wise equality: equal contents compare
// equal, any length or element difference breaks equality.
func TestEqual(t *testing.T) {
	a := vec.Of(1, 2, 3)

	require.True(t, vec.Equal(a, vec.Of(1, 2, 3)), "same contents must compare equal")
	require.False(t, vec.Equal(a, vec.Of(1, 2)), "shorter array must not compare equal")
	require.False(t, vec.Equal(a, vec.Of(1, 2, 4)), "differing element must break equality")
	require.True(t, vec.Equal(a, a), "an array must equal itself")
}

// TestEqual_EmptyForms verifies that every empty form — zero value,
// New(0), cleared — compares equal to every other.
func TestEqual_EmptyForms(t *testing.T) {
	var zero vec.Array[int]
	cleared := vec.Of(1, 2)
	cleared.Clear()

	require.True(t, vec.Equal(&zero, vec.New[int](0)))
	require.True(t, vec.Equal(&zero, cleared), "a cleared array must equal the zero value")
	require.True(t, vec.Equal[int](nil, &zero), "a nil *Array must compare as empty")
	require.Equal(t, 0, vec.Compare[int](nil, nil), "two nil *Arrays must compare equal")
	require.False(t, vec.Equal(&zero, vec.Of(0)), "[0] is not the empty array")
}

// TestEqualFunc verifies equality under a caller-supplied predicate.
func TestEqualFunc(t *testing.T) {
	a := vec.Of("Go", "VEC")
	b := vec.Of("go", "vec")

	require.True(t, vec.EqualFunc(a, b, strings.EqualFold), "case-insensitive contents must match")
	require.False(t, vec.EqualFunc(a, vec.Of("go"), strings.EqualFold), "length mismatch must fail")
}

// TestCompare verifies lexicographic ordering, including the
// strict-prefix rule: a proper prefix orders before its extension.
func TestCompare(t *testing.T) {
	require.Equal(t, 0, vec.Compare(vec.Of(1, 2), vec.Of(1, 2)))
	require.Equal(t, -1, vec.Compare(vec.Of(1, 2), vec.Of(1, 3)), "first differing element decides")
	require.Equal(t, 1, vec.Compare(vec.Of(2), vec.Of(1, 9, 9)), "ordering ignores length once elements differ")
	require.Equal(t, -1, vec.Compare(vec.Of(1, 2), vec.Of(1, 2, 3)), "a strict prefix orders before its extension")
	require.Equal(t, 1, vec.Compare(vec.Of(1, 2, 3), vec.Of(1, 2)))
}

// TestCompare_Empty verifies that the empty array orders before any
// non-empty array and equal to any other empty form.
func TestCompare_Empty(t *testing.T) {
	var empty vec.Array[string]

	require.Equal(t, 0, vec.Compare(&empty, vec.New[string](0)))
	require.Equal(t, -1, vec.Compare(&empty, vec.Of("a")), "empty orders before non-empty")
	require.Equal(t, 1, vec.Compare(vec.Of("a"), &empty))
}

// TestCompareFunc verifies ordering under a caller-supplied comparison.
func TestCompareFunc(t *testing.T) {
	desc := func(x, y int) int { return cmp.Compare(y, x) } // reversed ordering

	require.Equal(t, -1, vec.CompareFunc(vec.Of(3), vec.Of(1), desc))
	require.Equal(t, 0, vec.CompareFunc(vec.Of(5, 5), vec.Of(5, 5), desc))
}

// TestLess verifies the convenience predicate against Compare.
func TestLess(t *testing.T) {
	require.True(t, vec.Less(vec.Of(1, 2), vec.Of(1, 3)))
	require.True(t, vec.Less(vec.Of(1, 2), vec.Of(1, 2, 0)), "prefix must be Less than its extension")
	require.False(t, vec.Less(vec.Of(1, 2), vec.Of(1, 2)), "Less must be strict")
	require.False(t, vec.Less(vec.Of(2), vec.Of(1)))
}
