package tui

import (
	"sync"
	"time"

	"github.com/m-zajac/repodash/internal/app"
)

// Controls holds filter state shared between the UI loop and the dashboard.
// Safe for concurrent use.
type Controls struct {
	m sync.RWMutex

	startText string
	endText   string
	// datesPending is set when dates were changed from outside the UI loop.
	datesPending bool

	metric    int
	authors   app.AuthorOptions
	author    int // 0 means all authors
	busy      bool
	lastError error
}

var _ app.Controls = &Controls{}

// NewControls creates new Controls instance with the first metric selected.
func NewControls() *Controls {
	return &Controls{}
}

// Filter returns the current filter values.
func (c *Controls) Filter() app.FilterState {
	c.m.RLock()
	defer c.m.RUnlock()

	return app.FilterState{
		StartDate: app.ParseDate(c.startText),
		EndDate:   app.ParseDate(c.endText),
		Metric:    app.Metrics[c.metric],
		Author:    c.authorLocked(),
	}
}

// SetBusy sets the busy state. Entering busy state clears the last error.
func (c *Controls) SetBusy(busy bool) {
	c.m.Lock()
	defer c.m.Unlock()

	c.busy = busy
	if busy {
		c.lastError = nil
	}
}

// Busy reports whether a query cycle is in progress.
func (c *Controls) Busy() bool {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.busy
}

// SetDateRange sets the date inputs.
func (c *Controls) SetDateRange(start, end time.Time) {
	c.m.Lock()
	defer c.m.Unlock()

	c.startText = app.FormatDate(start)
	c.endText = app.FormatDate(end)
	c.datesPending = true
}

// SetDateText stores raw date input values typed by the user.
func (c *Controls) SetDateText(start, end string) {
	c.m.Lock()
	defer c.m.Unlock()

	c.startText = start
	c.endText = end
}

// takeDateRange returns date values set by SetDateRange since the last call.
func (c *Controls) takeDateRange() (start, end string, ok bool) {
	c.m.Lock()
	defer c.m.Unlock()

	if !c.datesPending {
		return "", "", false
	}
	c.datesPending = false
	return c.startText, c.endText, true
}

// SelectMetric selects metric. Unknown metrics are ignored.
func (c *Controls) SelectMetric(metric string) {
	c.m.Lock()
	defer c.m.Unlock()

	for i, m := range app.Metrics {
		if m == metric {
			c.metric = i
			return
		}
	}
}

// Metric returns the selected metric.
func (c *Controls) Metric() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return app.Metrics[c.metric]
}

// CycleMetric moves metric selection by step, wrapping around.
func (c *Controls) CycleMetric(step int) {
	c.m.Lock()
	defer c.m.Unlock()
	c.metric = wrap(c.metric+step, len(app.Metrics))
}

// AppendAuthors adds author options.
func (c *Controls) AppendAuthors(names []string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.authors.Append(names)
}

// Author returns the selected author, or "" when all authors are selected.
func (c *Controls) Author() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.authorLocked()
}

// AuthorCount returns number of author options, not counting "all authors".
func (c *Controls) AuthorCount() int {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.authors.Len()
}

// CycleAuthor moves author selection by step, wrapping around. "All authors" is the first option.
func (c *Controls) CycleAuthor(step int) {
	c.m.Lock()
	defer c.m.Unlock()
	c.author = wrap(c.author+step, c.authors.Len()+1)
}

// ShowError stores err for display.
func (c *Controls) ShowError(err error) {
	c.m.Lock()
	defer c.m.Unlock()
	c.lastError = err
}

// Err returns the last shown error.
func (c *Controls) Err() error {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.lastError
}

func (c *Controls) authorLocked() string {
	if c.author == 0 {
		return ""
	}
	names := c.authors.Names()
	if c.author > len(names) {
		return ""
	}
	return names[c.author-1]
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
