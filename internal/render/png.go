package render

import (
	"errors"
	"io"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/wcharczuk/go-chart/v2"
)

// WriteActivityPNG draws series as a PNG bar chart.
func WriteActivityPNG(w io.Writer, series app.ActivitySeries, metric string) error {
	if len(series) == 0 {
		return errors.New("activity series is empty")
	}

	bars := make([]chart.Value, 0, len(series))
	maxValue := 0.0
	for _, p := range series {
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Value})
		maxValue = max(maxValue, p.Value)
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	width := 120 + 60*len(series)
	if width < 640 {
		width = 640
	}

	graph := chart.BarChart{
		Title:  metric,
		Width:  width,
		Height: 480,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 40,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
