package conciseset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubSetReadOnlyView(t *testing.T) {
	s, _ := FromSorted([]int{1, 5, 10, 15, 20, 25})
	view := s.SubSet(10, 20)
	require.Equal(t, []int{10, 15}, view.ToArray())
	require.Equal(t, 2, view.Size())
	require.False(t, view.IsEmpty())
	require.True(t, view.Contains(15))
	require.False(t, view.Contains(25))

	first, err := view.First()
	require.NoError(t, err)
	require.Equal(t, 10, first)
	last, err := view.Last()
	require.NoError(t, err)
	require.Equal(t, 15, last)
}

func TestSubSetObservesParentMutation(t *testing.T) {
	s, _ := FromSorted([]int{1, 5, 10})
	view := s.SubSet(0, 20)
	_, _ = s.Add(15)
	require.True(t, view.Contains(15))
	require.Equal(t, 4, view.Size())
}

func TestSubSetAddRejectsOutOfBounds(t *testing.T) {
	s := New()
	view := s.SubSet(10, 20)
	_, err := view.Add(5)
	require.ErrorIs(t, err, ErrOutOfBounds)
	changed, err := view.Add(15)
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, s.Contains(15))
}

func TestSubSetRemoveOutsideBoundsIsNoop(t *testing.T) {
	s, _ := FromSorted([]int{5, 15})
	view := s.SubSet(10, 20)
	changed, err := view.Remove(5)
	require.NoError(t, err)
	require.False(t, changed)
	require.True(t, s.Contains(5))
}

func TestSubSetClearOnlyAffectsRange(t *testing.T) {
	s, _ := FromSorted([]int{1, 10, 15, 25})
	view := s.SubSet(10, 20)
	view.Clear()
	require.Equal(t, []int{1, 25}, s.ToArray())
}

func TestSubSetFillRangeOnlyAffectsRange(t *testing.T) {
	s := New()
	view := s.SubSet(10, 15)
	view.FillRange()
	require.Equal(t, []int{10, 11, 12, 13, 14}, s.ToArray())
}

func TestSubSetAddAllRestrictsToRange(t *testing.T) {
	s := New()
	view := s.SubSet(10, 20)
	other, _ := FromSorted([]int{5, 12, 18, 25})
	view.AddAll(other)
	require.Equal(t, []int{12, 18}, s.ToArray())
}

func TestSubSetRetainAllLeavesOutsideRangeAlone(t *testing.T) {
	s, _ := FromSorted([]int{1, 12, 18, 25})
	view := s.SubSet(10, 20)
	other, _ := FromSorted([]int{12})
	view.RetainAll(other)
	require.Equal(t, []int{1, 12, 25}, s.ToArray())
}

func TestHeadSetAndTailSet(t *testing.T) {
	s, _ := FromSorted([]int{1, 5, 10, 15})
	require.Equal(t, []int{1, 5}, s.HeadSet(10).ToArray())
	require.Equal(t, []int{10, 15}, s.TailSet(10).ToArray())
}
