package conciseset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	s := New()
	require.NoError(t, s.FillRange(0, 1000))
	_, _ = s.Add(5000)
	_, _ = s.Remove(500)

	var buf bytes.Buffer
	require.NoError(t, s.Dump(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, s.Size(), loaded.Size())
	require.Equal(t, mustLast(t, s), mustLast(t, loaded))
	require.Equal(t, s.ToArray(), loaded.ToArray())
}

func TestDumpLoadEmptySet(t *testing.T) {
	s := New()
	var buf bytes.Buffer
	require.NoError(t, s.Dump(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.True(t, loaded.IsEmpty())
}
