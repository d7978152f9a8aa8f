package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChart struct {
	tracker   *chartTracker
	out       string
	destroyed bool
}

func (c *fakeChart) Draw() (string, error) {
	if c.destroyed {
		return "", ErrChartDestroyed
	}
	return c.out, nil
}

func (c *fakeChart) Destroy() {
	c.tracker.m.Lock()
	defer c.tracker.m.Unlock()
	c.destroyed = true
	c.tracker.live--
}

type chartTracker struct {
	m       sync.Mutex
	live    int
	maxLive int
	created int
}

func (tr *chartTracker) factory(series app.ActivitySeries, metric string, _ int) Chart {
	tr.m.Lock()
	defer tr.m.Unlock()
	tr.created++
	tr.live++
	tr.maxLive = max(tr.maxLive, tr.live)

	labels := make([]string, 0, len(series))
	for _, p := range series {
		labels = append(labels, p.Label)
	}
	return &fakeChart{tracker: tr, out: metric + ":" + strings.Join(labels, ",")}
}

func TestActivityChart_SingleLiveInstance(t *testing.T) {
	t.Parallel()

	tracker := &chartTracker{}
	region := NewRegion(80)
	chart := NewActivityChart(region, tracker.factory)

	series := app.ActivitySeries{{Label: "Mon", Value: 1}, {Label: "Tue", Value: 2}}
	for i := 0; i < 5; i++ {
		require.NoError(t, chart.RenderActivity(series, app.MetricCommits))
	}

	assert.Equal(t, 5, tracker.created)
	assert.Equal(t, 1, tracker.maxLive)
	assert.Equal(t, 1, tracker.live)
	assert.Equal(t, "commits:Mon,Tue", region.String())

	chart.Close()
	assert.Equal(t, 0, tracker.live)
}

func TestActivityChart_EmptySeries(t *testing.T) {
	t.Parallel()

	region := NewRegion(40)
	chart := NewActivityChart(region, NewBarChart(false))

	require.NoError(t, chart.RenderActivity(app.ActivitySeries{}, app.MetricAdditions))

	out := region.String()
	assert.Contains(t, out, "additions")
	assert.Contains(t, out, "no data")
	assert.NotContains(t, out, "█")
}

func TestBarChart_Draw(t *testing.T) {
	t.Parallel()

	newChart := NewBarChart(false)
	c := newChart(app.ActivitySeries{
		{Label: "Mon", Value: 10},
		{Label: "Tuesday", Value: 5},
		{Label: "Wed", Value: 0},
	}, app.MetricCommits, 40)

	out, err := c.Draw()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "commits", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "    Mon │"))
	assert.True(t, strings.HasPrefix(lines[2], "Tuesday │"))
	assert.True(t, strings.HasSuffix(lines[1], " 10"))
	assert.True(t, strings.HasSuffix(lines[3], " 0"))

	full := strings.Count(lines[1], "█")
	half := strings.Count(lines[2], "█")
	assert.Greater(t, full, half)
	assert.Positive(t, half)
	assert.Zero(t, strings.Count(lines[3], "█"))

	c.Destroy()
	_, err = c.Draw()
	assert.ErrorIs(t, err, ErrChartDestroyed)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "1.50", formatValue(1.5))
	assert.Equal(t, "0", formatValue(0))
}
