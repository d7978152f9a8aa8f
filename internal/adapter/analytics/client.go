// Package analytics is an http client for the repository analytics backend.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/repodash/internal/app"
)

// Backend endpoints.
const (
	authorsPath       = "/api/authors"
	outliersPath      = "/api/outliers"
	activityPath      = "/api/activity"
	wordFrequencyPath = "/api/word_frequency"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client queries the analytics backend. One http GET per call, no retries.
// This struct is an adapter for app.AnalyticsClient.
type Client struct {
	doer    HTTPDoer
	address string
	json    jsoniter.API

	responseMaxSize int64
}

var _ app.AnalyticsClient = &Client{}

// NewClient creates new analytics client.
// address is the backend base url with protocol, eg. http://localhost:5000.
func NewClient(doer HTTPDoer, address string) *Client {
	return &Client{
		doer:            doer,
		address:         address,
		json:            jsoniter.ConfigCompatibleWithStandardLibrary,
		responseMaxSize: 1024 * 1024 * 10,
	}
}

// Authors returns author names active in the filter's date range.
func (c *Client) Authors(ctx context.Context, filter app.FilterState) ([]string, error) {
	var resp authorsResponse
	if err := c.get(ctx, authorsPath, dateParams(filter), "authors", &resp); err != nil {
		return nil, err
	}

	return resp.ToAuthors()
}

// Outliers returns commits with outstanding change size in the filter's date range.
func (c *Client) Outliers(ctx context.Context, filter app.FilterState) ([]app.Outlier, error) {
	var resp outliersResponse
	if err := c.get(ctx, outliersPath, dateParams(filter), "outliers", &resp); err != nil {
		return nil, err
	}

	return resp.ToOutliers()
}

// Activity returns activity series for the filter's date range, metric and, if set, author.
func (c *Client) Activity(ctx context.Context, filter app.FilterState) (app.ActivitySeries, error) {
	if filter.Metric == "" {
		return nil, app.InvalidRequestError("metric type cannot be empty")
	}

	v := dateParams(filter)
	v.Set("metric_type", filter.Metric)
	if filter.Author != "" {
		v.Set("author", filter.Author)
	}

	var resp app.ActivitySeries
	if err := c.get(ctx, activityPath, v, "activity", &resp); err != nil {
		return nil, err
	}

	return toSeries(resp)
}

// WordFrequency returns commit message word counts in the filter's date range.
func (c *Client) WordFrequency(ctx context.Context, filter app.FilterState) ([]app.WordFrequency, error) {
	var resp wordFrequencyResponse
	if err := c.get(ctx, wordFrequencyPath, dateParams(filter), "word frequency", &resp); err != nil {
		return nil, err
	}

	return resp.ToWords()
}

func (c *Client) get(ctx context.Context, path string, v url.Values, payload string, out interface{}) error {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &app.RemoteRequestError{Path: path, Status: resp.StatusCode}
	}

	// Read one byte over the limit to tell a full body from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.responseMaxSize+1))
	if err != nil {
		return fmt.Errorf("reading http response body: %w", err)
	}
	if int64(len(body)) > c.responseMaxSize {
		return &app.ParseError{Payload: payload, Err: errors.New("response body too large")}
	}

	if err := c.json.Unmarshal(body, out); err != nil {
		return &app.ParseError{Payload: payload, Err: err}
	}

	return nil
}

func dateParams(filter app.FilterState) url.Values {
	v := make(url.Values)
	if s := app.FormatDate(filter.StartDate); s != "" {
		v.Set("start_date", s)
	}
	if s := app.FormatDate(filter.EndDate); s != "" {
		v.Set("end_date", s)
	}
	return v
}
