package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/m-zajac/repodash/internal/app"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// OutlierTable renders outlier commits as a table.
type OutlierTable struct {
	region    *Region
	useColors bool
}

var _ app.OutliersView = &OutlierTable{}

// NewOutlierTable creates new OutlierTable drawing into region.
func NewOutlierTable(region *Region, useColors bool) *OutlierTable {
	return &OutlierTable{
		region:    region,
		useColors: useColors,
	}
}

// RenderOutliers rebuilds the whole table. No rows from previous renders survive.
func (t *OutlierTable) RenderOutliers(outliers []app.Outlier) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.Header([]string{"SHA", "Title", "Changes", "Z-Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var red, yellow func(...any) string
	if t.useColors {
		red = color.New(color.FgRed).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		yellow = fmt.Sprint
	}

	rows := make([][]string, 0, len(outliers))
	for _, o := range outliers {
		z := strconv.FormatFloat(o.ZScore, 'f', -1, 64)
		if o.ZScore >= 3 {
			z = red(z)
		} else {
			z = yellow(z)
		}
		rows = append(rows, []string{
			o.ShortSHA(),
			o.Title,
			strconv.Itoa(o.TotalChanges),
			z,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("adding table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	t.region.Replace(buf.String())
	return nil
}
