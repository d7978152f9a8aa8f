package analytics

import (
	"errors"
	"fmt"

	"github.com/m-zajac/repodash/internal/app"
)

var errNullPayload = errors.New("expected value, got null")

type authorsResponse []string

func (r authorsResponse) ToAuthors() ([]string, error) {
	if r == nil {
		return nil, &app.ParseError{Payload: "authors", Err: errNullPayload}
	}

	return []string(r), nil
}

type outliersResponse []outliersResponseItem

type outliersResponseItem struct {
	SHA          *string  `json:"sha"`
	Title        *string  `json:"title"`
	TotalChanges *int     `json:"total_changes"`
	ZScore       *float64 `json:"z_score"`
}

func (r outliersResponse) ToOutliers() ([]app.Outlier, error) {
	if r == nil {
		return nil, &app.ParseError{Payload: "outliers", Err: errNullPayload}
	}

	outliers := make([]app.Outlier, 0, len(r))
	for i, el := range r {
		if el.SHA == nil || el.Title == nil || el.TotalChanges == nil || el.ZScore == nil {
			return nil, &app.ParseError{
				Payload: "outliers",
				Err:     fmt.Errorf("item %d: missing one of sha, title, total_changes, z_score", i),
			}
		}
		outliers = append(outliers, app.Outlier{
			SHA:          *el.SHA,
			Title:        *el.Title,
			TotalChanges: *el.TotalChanges,
			ZScore:       *el.ZScore,
		})
	}

	return outliers, nil
}

func toSeries(s app.ActivitySeries) (app.ActivitySeries, error) {
	if s == nil {
		return nil, &app.ParseError{Payload: "activity", Err: errNullPayload}
	}

	return s, nil
}

type wordFrequencyResponse []wordFrequencyResponseItem

type wordFrequencyResponseItem struct {
	Text  *string  `json:"text"`
	Value *float64 `json:"value"`
}

func (r wordFrequencyResponse) ToWords() ([]app.WordFrequency, error) {
	if r == nil {
		return nil, &app.ParseError{Payload: "word frequency", Err: errNullPayload}
	}

	words := make([]app.WordFrequency, 0, len(r))
	for i, el := range r {
		if el.Text == nil || el.Value == nil {
			return nil, &app.ParseError{
				Payload: "word frequency",
				Err:     fmt.Errorf("item %d: missing text or value", i),
			}
		}
		words = append(words, app.WordFrequency{
			Text:  *el.Text,
			Value: *el.Value,
		})
	}

	return words, nil
}
