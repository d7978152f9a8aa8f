// Package console implements dashboard controls for non-interactive commands.
package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/m-zajac/repodash/internal/app"
	"github.com/sirupsen/logrus"
)

// Controls is a fixed filter given on the command line. Errors are printed to the writer.
type Controls struct {
	m       sync.Mutex
	filter  app.FilterState
	authors app.AuthorOptions
	errors  []error

	w   io.Writer
	red func(...any) string
	l   logrus.FieldLogger
}

var _ app.Controls = &Controls{}

// NewControls creates new Controls instance.
func NewControls(filter app.FilterState, w io.Writer, useColors bool, l logrus.FieldLogger) *Controls {
	red := fmt.Sprint
	if useColors {
		red = color.New(color.FgRed).SprintFunc()
	}

	return &Controls{
		filter: filter,
		w:      w,
		red:    red,
		l:      l.WithField("component", "console"),
	}
}

func (c *Controls) Filter() app.FilterState {
	c.m.Lock()
	defer c.m.Unlock()
	return c.filter
}

func (c *Controls) SetBusy(busy bool) {
	c.l.Debugf("busy: %t", busy)
}

// SetDateRange fills dates missing from the command line filter.
func (c *Controls) SetDateRange(start, end time.Time) {
	c.m.Lock()
	defer c.m.Unlock()

	if c.filter.StartDate.IsZero() {
		c.filter.StartDate = start
	}
	if c.filter.EndDate.IsZero() {
		c.filter.EndDate = end
	}
}

func (c *Controls) SelectMetric(metric string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.filter.Metric = metric
}

func (c *Controls) AppendAuthors(names []string) {
	c.m.Lock()
	defer c.m.Unlock()

	added := c.authors.Append(names)
	c.l.Debugf("added %d author options", added)
}

// Authors returns known author options.
func (c *Controls) Authors() []string {
	c.m.Lock()
	defer c.m.Unlock()
	return c.authors.Names()
}

func (c *Controls) ShowError(err error) {
	c.m.Lock()
	defer c.m.Unlock()

	c.errors = append(c.errors, err)
	fmt.Fprintln(c.w, c.red("Error: "+err.Error()))
}

// Errors returns errors shown so far.
func (c *Controls) Errors() []error {
	c.m.Lock()
	defer c.m.Unlock()

	errs := make([]error, len(c.errors))
	copy(errs, c.errors)
	return errs
}
