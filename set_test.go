package mapz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetOperations(t *testing.T) {
	s := NewSet[string]()
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())

	require.True(t, s.Add("a"))
	require.True(t, s.Add("b"))
	require.False(t, s.Add("a"))

	require.Equal(t, 2, s.Len())
	require.False(t, s.IsEmpty())
	require.True(t, s.Has("a"))
	require.True(t, s.Has("b"))
	require.False(t, s.Has("c"))
	require.ElementsMatch(t, []string{"a", "b"}, s.AsSlice())

	s.Delete("a")
	require.False(t, s.Has("a"))
	require.Equal(t, 1, s.Len())

	// Deleting an unknown value is a no-op.
	s.Delete("unknown")
	require.Equal(t, 1, s.Len())

	s.Delete("b")
	require.True(t, s.IsEmpty())
}

func TestNewSetWithItems(t *testing.T) {
	s := NewSet(1, 2, 2, 3)
	require.Equal(t, 3, s.Len())
	require.ElementsMatch(t, []int{1, 2, 3}, s.AsSlice())
}
