package analysis

import (
	"sort"
	"strings"
)

// Record is the minimal view of an analyzed review needed for aggregation.
// The ingestion boundary guarantees Themes is a well-typed slice, so the
// aggregators stay total.
type Record struct {
	ProductID      string
	Themes         []string
	SentimentLabel string
	Confidence     float64
}

// SentimentCounts tallies sentiment labels across a record collection.
// Total counts only the three recognized labels; unrecognized labels are
// ignored. AverageConfidence is the mean over all records, recognized or not.
type SentimentCounts struct {
	Positive          int     `json:"positive"`
	Negative          int     `json:"negative"`
	Neutral           int     `json:"neutral"`
	Total             int     `json:"total"`
	AverageConfidence float64 `json:"average_confidence"`
}

// AggregateSentiment tallies each record's sentiment label
// case-insensitively. An empty collection yields all zeroes.
func AggregateSentiment(records []Record) SentimentCounts {
	var counts SentimentCounts
	var confidenceSum float64

	for _, r := range records {
		confidenceSum += r.Confidence
		switch strings.ToLower(r.SentimentLabel) {
		case "positive":
			counts.Positive++
		case "negative":
			counts.Negative++
		case "neutral":
			counts.Neutral++
		}
	}

	counts.Total = counts.Positive + counts.Negative + counts.Neutral
	if len(records) > 0 {
		counts.AverageConfidence = round3(confidenceSum / float64(len(records)))
	}
	return counts
}

// AggregateThemes counts theme occurrences across records. Every non-empty
// entry of every record's theme list increments its counter; a theme
// occurring in several records counts once per record.
func AggregateThemes(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		for _, t := range r.Themes {
			if t == "" {
				continue
			}
			counts[t]++
		}
	}
	return counts
}

// ThemeMatrix distributes each record's unit weight evenly across its
// matched themes, grouped by product. Counts is row-major: one row per
// product, one column per theme. A product's row sums to the number of its
// records that contributed.
type ThemeMatrix struct {
	Products []string    `json:"products"`
	Themes   []string    `json:"themes"`
	Counts   [][]float64 `json:"counts"`
}

// ThemesByProduct computes the theme distribution matrix over records. The
// axes are the sorted distinct product ids and theme names observed in
// records that carry both a product id and at least one non-empty theme.
// Each qualifying record with k themes adds 1/k to every (product, theme)
// cell it touches; records without a product id or themes are skipped, not
// redistributed.
func ThemesByProduct(records []Record) ThemeMatrix {
	productSet := make(map[string]struct{})
	themeSet := make(map[string]struct{})

	for _, r := range records {
		if r.ProductID == "" || !hasTheme(r) {
			continue
		}
		productSet[r.ProductID] = struct{}{}
		for _, t := range r.Themes {
			if t != "" {
				themeSet[t] = struct{}{}
			}
		}
	}

	matrix := ThemeMatrix{
		Products: sortedKeys(productSet),
		Themes:   sortedKeys(themeSet),
	}

	productIndex := indexOf(matrix.Products)
	themeIndex := indexOf(matrix.Themes)

	matrix.Counts = make([][]float64, len(matrix.Products))
	for i := range matrix.Counts {
		matrix.Counts[i] = make([]float64, len(matrix.Themes))
	}

	for _, r := range records {
		row, ok := productIndex[r.ProductID]
		if !ok {
			continue
		}
		themes := nonEmptyThemes(r.Themes)
		if len(themes) == 0 {
			continue
		}
		share := 1.0 / float64(len(themes))
		for _, t := range themes {
			matrix.Counts[row][themeIndex[t]] += share
		}
	}
	return matrix
}

func hasTheme(r Record) bool {
	for _, t := range r.Themes {
		if t != "" {
			return true
		}
	}
	return false
}

func nonEmptyThemes(themes []string) []string {
	out := themes[:0:0]
	for _, t := range themes {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(values []string) map[string]int {
	index := make(map[string]int, len(values))
	for i, v := range values {
		index[v] = i
	}
	return index
}
