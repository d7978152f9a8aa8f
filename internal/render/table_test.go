package render

import (
	"strings"
	"testing"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlierTable_RenderOutliers(t *testing.T) {
	t.Parallel()

	region := NewRegion(120)
	table := NewOutlierTable(region, false)

	err := table.RenderOutliers([]app.Outlier{
		{SHA: "deadbeef00", Title: "Old row", TotalChanges: 7, ZScore: 1.5},
	})
	require.NoError(t, err)
	require.Contains(t, region.String(), "Old row")

	err = table.RenderOutliers([]app.Outlier{
		{SHA: "abcdef1234", Title: "Fix bug", TotalChanges: 500, ZScore: 4.2},
	})
	require.NoError(t, err)

	out := region.String()
	assert.Contains(t, out, "abcdef1")
	assert.NotContains(t, out, "abcdef12")
	assert.Contains(t, out, "Fix bug")
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "4.2")
	assert.NotContains(t, out, "Old row")
	assert.NotContains(t, out, "deadbee")
}

func TestOutlierTable_RenderEmpty(t *testing.T) {
	t.Parallel()

	region := NewRegion(80)
	region.Replace("stale")
	table := NewOutlierTable(region, false)

	require.NoError(t, table.RenderOutliers(nil))
	assert.NotContains(t, region.String(), "stale")
}

func TestOutlierTable_ZScoreFormatting(t *testing.T) {
	t.Parallel()

	region := NewRegion(120)
	table := NewOutlierTable(region, false)

	require.NoError(t, table.RenderOutliers([]app.Outlier{
		{SHA: "1111111", Title: "a", TotalChanges: 1, ZScore: 3},
		{SHA: "2222222", Title: "b", TotalChanges: 2, ZScore: 2.75},
	}))

	out := region.String()
	assert.Contains(t, out, " 3 ")
	assert.Contains(t, out, "2.75")
	assert.False(t, strings.Contains(out, "3.000000"))
}
