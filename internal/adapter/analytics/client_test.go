package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/m-zajac/repodash/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFilter = app.FilterState{
	StartDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	EndDate:   time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	Metric:    app.MetricCommits,
}

func TestClient_Outliers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doer       *mock.HTTPDoer
		filter     app.FilterState
		want       []app.Outlier
		wantStatus int
		wantParse  bool
	}{
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`[{"sha": "abcdef1234", "title": "Fix bug", "total_changes": 500, "z_score": 4.2}]`),
				},
			},
			filter: testFilter,
			want: []app.Outlier{
				{SHA: "abcdef1234", Title: "Fix bug", TotalChanges: 500, ZScore: 4.2},
			},
		},
		{
			name: "status ok, no dates",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`[]`)},
			},
			filter: app.FilterState{},
			want:   []app.Outlier{},
		},
		{
			name: "status not ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			filter:     testFilter,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			filter:     testFilter,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "status ok, body not json",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`<html>oops</html>`)},
			},
			filter:    testFilter,
			wantParse: true,
		},
		{
			name: "status ok, wrong field type",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`[{"sha": "a", "title": "b", "total_changes": "many", "z_score": 1}]`)},
			},
			filter:    testFilter,
			wantParse: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClient(tt.doer, "https://fake")
			got, err := c.Outliers(context.Background(), tt.filter)

			switch {
			case tt.wantStatus != 0:
				require.Error(t, err)
				var rre *app.RemoteRequestError
				require.ErrorAs(t, err, &rre)
				assert.Equal(t, tt.wantStatus, rre.Status)
				assert.Contains(t, err.Error(), strconv.Itoa(tt.wantStatus))
			case tt.wantParse:
				require.Error(t, err)
				assert.True(t, app.IsParseError(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			require.Len(t, tt.doer.Responses, 1)
			req := tt.doer.Responses[0].Request
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/api/outliers", req.URL.Path)
			assert.Equal(t, app.FormatDate(tt.filter.StartDate), req.URL.Query().Get("start_date"))
			assert.Equal(t, app.FormatDate(tt.filter.EndDate), req.URL.Query().Get("end_date"))
			if tt.filter.StartDate.IsZero() {
				_, ok := req.URL.Query()["start_date"]
				assert.False(t, ok)
			}
		})
	}
}

func TestClient_ErrorMessageHasStatus(t *testing.T) {
	t.Parallel()

	c := NewClient(&mock.HTTPDoer{Statuses: []int{http.StatusBadGateway}}, "https://fake")
	_, err := c.WordFrequency(context.Background(), testFilter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Activity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		filter     app.FilterState
		want       app.ActivitySeries
		wantAuthor bool
		wantErr    bool
	}{
		{
			name:   "ordered series",
			body:   `{"Mon": 5, "Tue": 0, "Wed": 2}`,
			filter: testFilter,
			want: app.ActivitySeries{
				{Label: "Mon", Value: 5},
				{Label: "Tue", Value: 0},
				{Label: "Wed", Value: 2},
			},
		},
		{
			name: "with author",
			body: `{"Mon": 1}`,
			filter: app.FilterState{
				Metric: app.MetricDeletions,
				Author: "Jane Doe",
			},
			want:       app.ActivitySeries{{Label: "Mon", Value: 1}},
			wantAuthor: true,
		},
		{
			name:   "empty mapping",
			body:   `{}`,
			filter: testFilter,
			want:   app.ActivitySeries{},
		},
		{
			name:    "null",
			body:    `null`,
			filter:  testFilter,
			wantErr: true,
		},
		{
			name:    "not a number",
			body:    `{"Mon": "five"}`,
			filter:  testFilter,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doer := &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(tt.body)},
			}
			c := NewClient(doer, "https://fake")
			got, err := c.Activity(context.Background(), tt.filter)
			if tt.wantErr {
				assert.True(t, app.IsParseError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			require.Len(t, doer.Responses, 1)
			q := doer.Responses[0].Request.URL.Query()
			assert.Equal(t, "/api/activity", doer.Responses[0].Request.URL.Path)
			assert.Equal(t, tt.filter.Metric, q.Get("metric_type"))
			_, hasAuthor := q["author"]
			assert.Equal(t, tt.wantAuthor, hasAuthor)
			if tt.wantAuthor {
				assert.Equal(t, tt.filter.Author, q.Get("author"))
			}
		})
	}
}

func TestClient_ActivityRequiresMetric(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{}
	c := NewClient(doer, "https://fake")
	_, err := c.Activity(context.Background(), app.FilterState{})
	assert.True(t, app.IsInvalidRequestError(err))
	assert.Empty(t, doer.Responses)
}

func TestClient_Authors(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusInternalServerError},
		Bodies:   [][]byte{[]byte(`["alice", "bob"]`), nil},
	}
	c := NewClient(doer, "https://fake")

	got, err := c.Authors(context.Background(), testFilter)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, got)

	_, err = c.Authors(context.Background(), testFilter)
	assert.True(t, app.IsRemoteRequestError(err))

	require.Len(t, doer.Responses, 2)
	assert.Equal(t, "/api/authors", doer.Responses[0].Request.URL.Path)
}

func TestClient_WordFrequency(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`[{"text": "parser", "value": 12}]`)},
	}
	c := NewClient(doer, "https://fake")

	got, err := c.WordFrequency(context.Background(), testFilter)
	require.NoError(t, err)
	assert.Equal(t, []app.WordFrequency{{Text: "parser", Value: 12}}, got)
	assert.Equal(t, "/api/word_frequency", doer.Responses[0].Request.URL.Path)
}

func TestClient_ResponseTooLarge(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`["alice", "bob", "carol"]`)},
	}
	c := NewClient(doer, "https://fake")
	c.responseMaxSize = 8

	_, err := c.Authors(context.Background(), testFilter)
	assert.True(t, app.IsParseError(err))
}

func TestClient_HTTPServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/outliers":
			if r.URL.Query().Get("start_date") != "2023-01-01" || r.URL.Query().Get("end_date") != "2023-12-31" {
				http.Error(w, "bad dates", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"sha": "abcdef1234", "title": "Fix bug", "total_changes": 500, "z_score": 4.2}]`))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)

	got, err := c.Outliers(context.Background(), testFilter)
	require.NoError(t, err)
	assert.Equal(t, []app.Outlier{{SHA: "abcdef1234", Title: "Fix bug", TotalChanges: 500, ZScore: 4.2}}, got)

	_, err = c.Authors(context.Background(), testFilter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
