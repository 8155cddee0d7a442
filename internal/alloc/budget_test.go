package alloc_test

import (
	"testing"

	"deedles.dev/strq/internal/alloc"
	"github.com/stretchr/testify/require"
)

func TestBudgetZeroValue(t *testing.T) {
	var b alloc.Budget
	for range 100 {
		require.True(t, b.Alloc(8))
	}
	require.Equal(t, 100, b.Allocs())
	require.Equal(t, 800, b.Live())

	b.Free(8)
	require.Equal(t, 1, b.Frees())
	require.Equal(t, 99, b.Outstanding())
	require.Equal(t, 792, b.Live())
}

func TestBudgetLimit(t *testing.T) {
	b := alloc.Limit(2)
	require.True(t, b.Alloc(1))
	require.True(t, b.Alloc(1))
	require.False(t, b.Alloc(1))
	require.Equal(t, 2, b.Allocs())
	require.Equal(t, 2, b.Live())

	b.SetLimit(1)
	require.True(t, b.Alloc(4))
	require.False(t, b.Alloc(4))

	b.SetLimit(-1)
	require.True(t, b.Alloc(4))
	require.Equal(t, 4, b.Allocs())
	require.Equal(t, 10, b.Live())
}
