package staticmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats_ReflectsOccupancy(t *testing.T) {
	tbl, err := New[int64, int64](16, -1, -1)
	require.NoError(t, err)

	for i := int64(0); i < 4; i++ {
		require.NoError(t, tbl.Insert(i, i*10, DefaultHash64[int64]))
	}

	stats := tbl.Stats()
	require.Equal(t, 16, stats.Capacity)
	require.Equal(t, 4, stats.Size)
	require.Equal(t, 12, stats.EmptySlots)
	require.InDelta(t, 0.25, stats.LoadFactor, 1e-9)

	require.True(t, strings.Contains(stats.String(), "TableStats{"))
}
