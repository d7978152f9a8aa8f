package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the date format used by filter inputs and query parameters.
const DateLayout = "2006-01-02"

// Cache keys. Readers of these keys must tolerate absence and treat parse failure as absence.
const (
	KeyAuthors      = "authors"
	KeyLastOutliers = "last_outliers"
	KeyLastActivity = "last_activity"
	KeyLastWords    = "last_words"
)

// Metric types understood by the activity endpoint.
const (
	MetricCommits      = "commits"
	MetricAdditions    = "additions"
	MetricDeletions    = "deletions"
	MetricTotalChanges = "total_changes"
)

// Metrics lists selectable metric types in selector order.
var Metrics = []string{MetricCommits, MetricAdditions, MetricDeletions, MetricTotalChanges}

// CacheKeys lists every key the dashboard persists.
var CacheKeys = []string{KeyAuthors, KeyLastOutliers, KeyLastActivity, KeyLastWords}

// FilterState is a snapshot of the filter controls.
// Zero dates and empty author mean "absent".
type FilterState struct {
	StartDate time.Time
	EndDate   time.Time
	Metric    string
	Author    string
}

// ParseDate parses a YYYY-MM-DD input. Empty or unparseable input yields the zero time.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate formats t as YYYY-MM-DD, or returns "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DefaultDateRange returns the default filter range relative to now:
// end is yesterday, start is one year before end.
func DefaultDateRange(now time.Time) (start, end time.Time) {
	y, m, d := now.UTC().Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	start = end.AddDate(-1, 0, 0)
	return start, end
}

// Outlier entity
type Outlier struct {
	SHA          string  `json:"sha"`
	Title        string  `json:"title"`
	TotalChanges int     `json:"total_changes"`
	ZScore       float64 `json:"z_score"`
}

// ShortSHA returns the first 7 characters of the commit sha.
func (o Outlier) ShortSHA() string {
	if len(o.SHA) <= 7 {
		return o.SHA
	}
	return o.SHA[:7]
}

// ActivityPoint is a single labeled value of an activity series.
type ActivityPoint struct {
	Label string
	Value float64
}

// ActivitySeries maps category labels to values.
// Order is significant, so the series is kept as a slice and encoded as a JSON object in order.
type ActivitySeries []ActivityPoint

// MarshalJSON encodes the series as a JSON object, keeping point order.
func (s ActivitySeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of label->number, keeping key order.
func (s *ActivitySeries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("activity series: expected object, got %v", tok)
	}

	series := ActivitySeries{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activity series: unexpected key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		num, ok := tok.(json.Number)
		if !ok {
			return fmt.Errorf("activity series: value for %q is not a number", label)
		}
		v, err := num.Float64()
		if err != nil {
			return fmt.Errorf("activity series: value for %q: %w", label, err)
		}
		series = append(series, ActivityPoint{Label: label, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = series
	return nil
}

// CachedActivity pairs a rendered series with the metric that produced it.
type CachedActivity struct {
	Data   ActivitySeries `json:"data"`
	Metric string         `json:"metric"`
}

// WordFrequency entity
type WordFrequency struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}
