package render

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/m-zajac/repodash/internal/app"
)

// WordWeight is a word passed to a cloud layout.
type WordWeight struct {
	Text  string
	Value float64
}

// CloudLayout lays out weighted words into lines no wider than width.
type CloudLayout func(words []WordWeight, width int) string

// WordCloud renders word frequencies.
type WordCloud struct {
	region *Region
	layout CloudLayout
}

var _ app.WordsView = &WordCloud{}

// NewWordCloud creates new WordCloud instance.
func NewWordCloud(region *Region, layout CloudLayout) *WordCloud {
	return &WordCloud{
		region: region,
		layout: layout,
	}
}

// RenderWords clears the cloud and lays out words, if there are any.
func (c *WordCloud) RenderWords(words []app.WordFrequency) error {
	c.region.Clear()
	if len(words) == 0 {
		return nil
	}

	weights := make([]WordWeight, 0, len(words))
	for _, w := range words {
		weights = append(weights, WordWeight{Text: w.Text, Value: w.Value})
	}
	c.region.Replace(c.layout(weights, c.region.Width()))

	return nil
}

const cloudLevels = 5

// NewCloudLayout returns a CloudLayout emphasizing words by weight.
// Heaviest words are upper-cased; with colors each weight level gets its own style.
func NewCloudLayout(useColors bool) CloudLayout {
	styles := make([]func(...any) string, cloudLevels)
	for i := range styles {
		styles[i] = fmt.Sprint
	}
	if useColors {
		styles[0] = color.New(color.Faint).SprintFunc()
		styles[1] = color.New(color.FgBlue).SprintFunc()
		styles[2] = color.New(color.FgCyan).SprintFunc()
		styles[3] = color.New(color.FgYellow, color.Bold).SprintFunc()
		styles[4] = color.New(color.FgRed, color.Bold).SprintFunc()
	}

	return func(words []WordWeight, width int) string {
		if len(words) == 0 {
			return ""
		}

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, w := range words {
			lo = math.Min(lo, w.Value)
			hi = math.Max(hi, w.Value)
		}

		var sb strings.Builder
		lineLen := 0
		for _, w := range words {
			level := weightLevel(w.Value, lo, hi)
			text := w.Text
			if level == cloudLevels-1 {
				text = strings.ToUpper(text)
			}

			n := utf8.RuneCountInString(text)
			if lineLen > 0 && lineLen+2+n > width {
				sb.WriteByte('\n')
				lineLen = 0
			}
			if lineLen > 0 {
				sb.WriteString("  ")
				lineLen += 2
			}
			sb.WriteString(styles[level](text))
			lineLen += n
		}
		sb.WriteByte('\n')

		return sb.String()
	}
}

// weightLevel maps value into [0, cloudLevels) relative to the lo..hi range.
func weightLevel(v, lo, hi float64) int {
	if hi <= lo {
		return cloudLevels - 1
	}
	level := int((v - lo) / (hi - lo) * cloudLevels)
	if level >= cloudLevels {
		level = cloudLevels - 1
	}
	if level < 0 {
		level = 0
	}
	return level
}
