package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/m-zajac/repodash/internal/render"
)

// screen holds the rendered dashboard views.
type screen struct {
	outliers *render.Region
	activity *render.Region
	words    *render.Region

	chart *render.ActivityChart
	views app.Views
}

func newScreen(width int, colors bool) *screen {
	s := screen{
		outliers: render.NewRegion(width),
		activity: render.NewRegion(width),
		words:    render.NewRegion(width),
	}
	s.chart = render.NewActivityChart(s.activity, render.NewBarChart(colors))
	s.views = app.Views{
		Outliers: render.NewOutlierTable(s.outliers, colors),
		Activity: s.chart,
		Words:    render.NewWordCloud(s.words, render.NewCloudLayout(colors)),
	}

	return &s
}

// Print writes non-empty views to w.
func (s *screen) Print(w io.Writer) {
	sections := []struct {
		title  string
		region *render.Region
	}{
		{"Outliers", s.outliers},
		{"Activity", s.activity},
		{"Words", s.words},
	}

	for _, sec := range sections {
		content := strings.TrimRight(sec.region.String(), "\n")
		if content == "" {
			continue
		}
		fmt.Fprintf(w, "%s\n%s\n\n", sec.title, content)
	}
}

func (s *screen) Close() {
	s.chart.Close()
}
