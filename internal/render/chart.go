package render

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/m-zajac/repodash/internal/app"
)

// ErrChartDestroyed is returned when drawing a chart instance that was already destroyed.
var ErrChartDestroyed = errors.New("chart instance destroyed")

// Chart is a drawable chart instance. It holds its resources until Destroy is called.
type Chart interface {
	Draw() (string, error)
	Destroy()
}

// ChartFactory creates chart instance for given series.
type ChartFactory func(series app.ActivitySeries, metric string, width int) Chart

// ActivityChart renders activity series. At most one chart instance is alive at a time:
// the previous one is destroyed before a new one is created.
type ActivityChart struct {
	region   *Region
	newChart ChartFactory

	m       sync.Mutex
	current Chart
}

var _ app.ActivityView = &ActivityChart{}

// NewActivityChart creates new ActivityChart instance.
func NewActivityChart(region *Region, newChart ChartFactory) *ActivityChart {
	return &ActivityChart{
		region:   region,
		newChart: newChart,
	}
}

// RenderActivity replaces the current chart with a new one built from series.
func (c *ActivityChart) RenderActivity(series app.ActivitySeries, metric string) error {
	c.m.Lock()
	defer c.m.Unlock()

	c.destroy()
	c.current = c.newChart(series, metric, c.region.Width())

	out, err := c.current.Draw()
	if err != nil {
		return fmt.Errorf("drawing activity chart: %w", err)
	}
	c.region.Replace(out)

	return nil
}

// Close destroys the current chart instance, if any.
func (c *ActivityChart) Close() {
	c.m.Lock()
	defer c.m.Unlock()
	c.destroy()
}

func (c *ActivityChart) destroy() {
	if c.current == nil {
		return
	}
	c.current.Destroy()
	c.current = nil
}

// NewBarChart returns a ChartFactory drawing horizontal text bars, one per label.
func NewBarChart(useColors bool) ChartFactory {
	paint := fmt.Sprint
	if useColors {
		paint = color.New(color.FgCyan).SprintFunc()
	}

	return func(series app.ActivitySeries, metric string, width int) Chart {
		points := make(app.ActivitySeries, len(series))
		copy(points, series)
		return &barChart{
			points: points,
			metric: metric,
			width:  width,
			paint:  paint,
		}
	}
}

type barChart struct {
	points    app.ActivitySeries
	metric    string
	width     int
	paint     func(...any) string
	destroyed bool
}

func (b *barChart) Draw() (string, error) {
	if b.destroyed {
		return "", ErrChartDestroyed
	}

	var sb strings.Builder
	sb.WriteString(b.metric)
	sb.WriteByte('\n')

	if len(b.points) == 0 {
		sb.WriteString("no data\n")
		return sb.String(), nil
	}

	labelWidth, valueWidth := 0, 0
	maxValue := 0.0
	values := make([]string, len(b.points))
	for i, p := range b.points {
		labelWidth = max(labelWidth, utf8.RuneCountInString(p.Label))
		values[i] = formatValue(p.Value)
		valueWidth = max(valueWidth, len(values[i]))
		maxValue = math.Max(maxValue, p.Value)
	}

	barWidth := b.width - labelWidth - valueWidth - 4
	if barWidth < 1 {
		barWidth = 1
	}

	for i, p := range b.points {
		n := 0
		if maxValue > 0 && p.Value > 0 {
			n = int(math.Round(p.Value / maxValue * float64(barWidth)))
		}
		pad := labelWidth - utf8.RuneCountInString(p.Label)
		fmt.Fprintf(&sb, "%s%s │%s%s %s\n",
			strings.Repeat(" ", pad),
			p.Label,
			b.paint(strings.Repeat("█", n)),
			strings.Repeat(" ", barWidth-n),
			values[i],
		)
	}

	return sb.String(), nil
}

func (b *barChart) Destroy() {
	b.destroyed = true
	b.points = nil
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
