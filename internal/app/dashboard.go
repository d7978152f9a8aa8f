package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// AnalyticsClient queries the repository analytics backend.
//
//go:generate mockgen -destination mock/dashboard.go -package mock github.com/m-zajac/repodash/internal/app AnalyticsClient,Cache
type AnalyticsClient interface {
	Authors(ctx context.Context, filter FilterState) ([]string, error)
	Outliers(ctx context.Context, filter FilterState) ([]Outlier, error)
	Activity(ctx context.Context, filter FilterState) (ActivitySeries, error)
	WordFrequency(ctx context.Context, filter FilterState) ([]WordFrequency, error)
}

// Cache persists values between sessions.
// Get returns false with nil error when nothing is stored under key.
type Cache interface {
	Get(key string, v interface{}) (bool, error)
	Set(key string, v interface{}) error
}

// Controls is the input side of the dashboard: filter inputs, selectors,
// the busy indicator and the error display.
// Implementations must be safe for concurrent use.
type Controls interface {
	// Filter returns the current values of the filter inputs.
	Filter() FilterState
	// SetBusy toggles the busy indicator and disables the run trigger while busy.
	SetBusy(busy bool)
	SetDateRange(start, end time.Time)
	SelectMetric(metric string)
	// AppendAuthors adds options to the author selector. Existing options are never removed.
	AppendAuthors(names []string)
	ShowError(err error)
}

// OutliersView renders the outlier table.
type OutliersView interface {
	RenderOutliers(outliers []Outlier) error
}

// ActivityView renders the activity chart.
type ActivityView interface {
	RenderActivity(series ActivitySeries, metric string) error
}

// WordsView renders the word cloud.
type WordsView interface {
	RenderWords(words []WordFrequency) error
}

// Views groups dashboard renderers.
type Views struct {
	Outliers OutliersView
	Activity ActivityView
	Words    WordsView
}

// Dashboard drives queries against the analytics backend, renders the results
// and keeps the last rendered results cached.
type Dashboard struct {
	client   AnalyticsClient
	cache    Cache
	controls Controls
	views    Views
	l        logrus.FieldLogger

	now func() time.Time
}

// NewDashboard creates new Dashboard instance.
func NewDashboard(
	client AnalyticsClient,
	cache Cache,
	controls Controls,
	views Views,
	l logrus.FieldLogger,
) *Dashboard {
	return &Dashboard{
		client:   client,
		cache:    cache,
		controls: controls,
		views:    views,
		l:        l,
		now:      time.Now,
	}
}

// Init restores cached views, prefills the date range and starts loading authors in the background.
// Returned chan is closed when authors loading is finished.
func (d *Dashboard) Init(ctx context.Context) <-chan struct{} {
	d.Restore()

	start, end := DefaultDateRange(d.now())
	d.controls.SetDateRange(start, end)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := d.loadAuthors(ctx, FilterState{}); err != nil {
			d.l.Errorf("loading authors: %v", err)
		}
	}()

	return done
}

// Restore renders last cached results. Each view is restored independently;
// missing or unreadable entries are skipped.
func (d *Dashboard) Restore() {
	var outliers []Outlier
	if d.restore(KeyLastOutliers, &outliers) {
		if err := d.views.Outliers.RenderOutliers(outliers); err != nil {
			d.l.Warnf("restoring outliers view: %v", err)
		}
	}

	var activity CachedActivity
	if d.restore(KeyLastActivity, &activity) {
		d.controls.SelectMetric(activity.Metric)
		if err := d.views.Activity.RenderActivity(activity.Data, activity.Metric); err != nil {
			d.l.Warnf("restoring activity view: %v", err)
		}
	}

	var words []WordFrequency
	if d.restore(KeyLastWords, &words) {
		if err := d.views.Words.RenderWords(words); err != nil {
			d.l.Warnf("restoring words view: %v", err)
		}
	}
}

// Run executes a single query cycle.
// Filter values are read once, at the beginning of the cycle.
// Any error aborts the remaining steps and is shown to the user. Busy state is always cleared on return.
func (d *Dashboard) Run(ctx context.Context) error {
	filter := d.controls.Filter()

	d.controls.SetBusy(true)
	defer d.controls.SetBusy(false)

	if err := d.run(ctx, filter); err != nil {
		d.l.Errorf("query cycle failed: %v", err)
		d.controls.ShowError(err)
		return err
	}

	return nil
}

func (d *Dashboard) run(ctx context.Context, filter FilterState) error {
	var cachedAuthors []string
	found, err := d.cache.Get(KeyAuthors, &cachedAuthors)
	if err != nil {
		d.l.Warnf("reading cached authors: %v", err)
		found = false
	}
	if !found {
		if err := d.loadAuthors(ctx, filter); err != nil {
			return err
		}
	}

	outliers, err := d.client.Outliers(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetching outliers: %w", err)
	}
	if err := d.views.Outliers.RenderOutliers(outliers); err != nil {
		return fmt.Errorf("rendering outliers: %w", err)
	}

	activity, err := d.client.Activity(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetching activity: %w", err)
	}
	if err := d.views.Activity.RenderActivity(activity, filter.Metric); err != nil {
		return fmt.Errorf("rendering activity: %w", err)
	}

	words, err := d.client.WordFrequency(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetching word frequency: %w", err)
	}
	if err := d.views.Words.RenderWords(words); err != nil {
		return fmt.Errorf("rendering word frequency: %w", err)
	}

	d.store(KeyLastOutliers, outliers)
	d.store(KeyLastActivity, CachedActivity{Data: activity, Metric: filter.Metric})
	d.store(KeyLastWords, words)

	return nil
}

func (d *Dashboard) loadAuthors(ctx context.Context, filter FilterState) error {
	authors, err := d.client.Authors(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetching authors: %w", err)
	}

	d.store(KeyAuthors, authors)
	d.controls.AppendAuthors(authors)

	return nil
}

func (d *Dashboard) restore(key string, v interface{}) bool {
	found, err := d.cache.Get(key, v)
	if err != nil {
		d.l.Warnf("restoring %s: %v", key, err)
		return false
	}

	return found
}

// store writes to cache. Cache failures never interrupt the user.
func (d *Dashboard) store(key string, v interface{}) {
	if err := d.cache.Set(key, v); err != nil {
		d.l.Warnf("caching %s: %v", key, err)
	}
}
