package conciseset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionIntersectionDifferenceXor(t *testing.T) {
	a, _ := FromSorted([]int{1, 2, 3, 100, 1000})
	b, _ := FromSorted([]int{2, 3, 4, 1000, 2000})

	require.Equal(t, []int{1, 2, 3, 4, 100, 1000, 2000}, Union(a, b).ToArray())
	require.Equal(t, []int{2, 3, 1000}, Intersection(a, b).ToArray())
	require.Equal(t, []int{1, 100}, Difference(a, b).ToArray())
	require.Equal(t, []int{1, 4, 100, 2000}, SymmetricDifference(a, b).ToArray())
}

func TestSizeVariantsMatchMaterialized(t *testing.T) {
	a, _ := FromSorted([]int{1, 2, 3, 100, 1000})
	b, _ := FromSorted([]int{2, 3, 4, 1000, 2000})

	require.Equal(t, Union(a, b).Size(), UnionSize(a, b))
	require.Equal(t, Intersection(a, b).Size(), IntersectionSize(a, b))
	require.Equal(t, Difference(a, b).Size(), DifferenceSize(a, b))
	require.Equal(t, SymmetricDifference(a, b).Size(), SymmetricDifferenceSize(a, b))
}

func TestUnionWithEmpty(t *testing.T) {
	a, _ := FromSorted([]int{1, 2, 3})
	empty := New()

	require.Equal(t, a.ToArray(), Union(a, empty).ToArray())
	require.Equal(t, a.ToArray(), Union(empty, a).ToArray())
	require.Equal(t, 0, Intersection(a, empty).Size())
	require.Equal(t, a.ToArray(), Difference(a, empty).ToArray())
	require.Equal(t, 0, Difference(empty, a).Size())
}

func TestOpsOverLongRuns(t *testing.T) {
	a := New()
	require.NoError(t, a.FillRange(0, 100000))
	b := New()
	require.NoError(t, b.FillRange(50000, 150000))

	union := Union(a, b)
	require.Equal(t, 0, mustFirst(t, union))
	require.Equal(t, 149999, mustLast(t, union))
	require.Equal(t, 150000, union.Size())

	inter := Intersection(a, b)
	require.Equal(t, 50000, mustFirst(t, inter))
	require.Equal(t, 99999, mustLast(t, inter))
	require.Equal(t, 50000, inter.Size())
}

func mustFirst(t *testing.T, s *Set) int {
	t.Helper()
	v, err := s.First()
	require.NoError(t, err)
	return v
}
