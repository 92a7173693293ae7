package conciseset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugInfoMentionsEachWordKind(t *testing.T) {
	s := New()
	require.NoError(t, s.FillRange(0, 1000))
	_, _ = s.Add(2000)
	info := s.DebugInfo()
	require.True(t, strings.Contains(info, "ONE_FILL") && strings.Contains(info, "LITERAL") && strings.Contains(info, "ZERO_FILL"))
	require.True(t, strings.Contains(info, "size=1001"))
}

func TestCompressionRatiosOfEmptySet(t *testing.T) {
	s := New()
	require.Equal(t, float64(0), s.BitmapCompressionRatio())
	require.Equal(t, float64(0), s.CollectionCompressionRatio())
}

func TestCompressionRatioOfDenseRunIsSmall(t *testing.T) {
	s := New()
	require.NoError(t, s.FillRange(0, 1000000))
	require.Less(t, s.BitmapCompressionRatio(), 0.01)
}
