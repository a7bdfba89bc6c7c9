package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSentiment_Empty(t *testing.T) {
	counts := AggregateSentiment(nil)
	assert.Equal(t, SentimentCounts{}, counts)
}

func TestAggregateSentiment_Tallies(t *testing.T) {
	records := []Record{
		{SentimentLabel: "Positive", Confidence: 0.8},
		{SentimentLabel: "positive", Confidence: 0.6},
		{SentimentLabel: "NEGATIVE", Confidence: 0.9},
		{SentimentLabel: "Neutral", Confidence: 0.1},
	}

	counts := AggregateSentiment(records)
	assert.Equal(t, 2, counts.Positive)
	assert.Equal(t, 1, counts.Negative)
	assert.Equal(t, 1, counts.Neutral)
	assert.Equal(t, 4, counts.Total)
	assert.InDelta(t, 0.6, counts.AverageConfidence, 0.0001)
}

func TestAggregateSentiment_IgnoresUnknownLabels(t *testing.T) {
	records := []Record{
		{SentimentLabel: "Positive", Confidence: 1.0},
		{SentimentLabel: "Mixed", Confidence: 0.5},
		{SentimentLabel: "", Confidence: 0.5},
	}

	counts := AggregateSentiment(records)
	assert.Equal(t, 1, counts.Positive)
	// Total covers recognized labels only, the average covers every record.
	assert.Equal(t, 1, counts.Total)
	assert.InDelta(t, 2.0/3.0, counts.AverageConfidence, 0.001)
}

func TestAggregateThemes(t *testing.T) {
	records := []Record{
		{Themes: []string{"Comfort", "Durability"}},
		{Themes: []string{"Comfort"}},
	}

	counts := AggregateThemes(records)
	assert.Equal(t, map[string]int{"Comfort": 2, "Durability": 1}, counts)
}

func TestAggregateThemes_SkipsEmptyEntries(t *testing.T) {
	records := []Record{
		{Themes: []string{"", "Comfort", ""}},
		{Themes: nil},
	}

	counts := AggregateThemes(records)
	assert.Equal(t, map[string]int{"Comfort": 1}, counts)
}

func TestThemesByProduct_SingleRecord(t *testing.T) {
	records := []Record{
		{ProductID: "Rings", Themes: []string{"Comfort", "Appearance"}},
	}

	matrix := ThemesByProduct(records)
	require.Equal(t, []string{"Rings"}, matrix.Products)
	require.Equal(t, []string{"Appearance", "Comfort"}, matrix.Themes)
	require.Len(t, matrix.Counts, 1)
	assert.Equal(t, []float64{0.5, 0.5}, matrix.Counts[0])
}

func TestThemesByProduct_SortedAxes(t *testing.T) {
	records := []Record{
		{ProductID: "Rings", Themes: []string{"Durability"}},
		{ProductID: "Earrings", Themes: []string{"Comfort"}},
		{ProductID: "Bracelets", Themes: []string{"Appearance"}},
	}

	matrix := ThemesByProduct(records)
	assert.Equal(t, []string{"Bracelets", "Earrings", "Rings"}, matrix.Products)
	assert.Equal(t, []string{"Appearance", "Comfort", "Durability"}, matrix.Themes)
}

func TestThemesByProduct_RowSumsToRecordCount(t *testing.T) {
	records := []Record{
		{ProductID: "Rings", Themes: []string{"Comfort", "Appearance"}},
		{ProductID: "Rings", Themes: []string{"Durability"}},
		{ProductID: "Rings", Themes: []string{"Comfort", "Durability", "Appearance"}},
		{ProductID: "Earrings", Themes: []string{"Comfort"}},
	}

	matrix := ThemesByProduct(records)
	require.Equal(t, []string{"Earrings", "Rings"}, matrix.Products)

	var ringsSum, earringsSum float64
	for _, v := range matrix.Counts[1] {
		ringsSum += v
	}
	for _, v := range matrix.Counts[0] {
		earringsSum += v
	}
	assert.InDelta(t, 3.0, ringsSum, 0.0001)
	assert.InDelta(t, 1.0, earringsSum, 0.0001)
}

func TestThemesByProduct_SkipsMalformedRecords(t *testing.T) {
	records := []Record{
		{ProductID: "Rings", Themes: []string{"Comfort"}},
		{ProductID: "", Themes: []string{"Comfort"}},
		{ProductID: "Pendants", Themes: nil},
		{ProductID: "Necklaces", Themes: []string{""}},
	}

	matrix := ThemesByProduct(records)
	assert.Equal(t, []string{"Rings"}, matrix.Products)
	assert.Equal(t, []string{"Comfort"}, matrix.Themes)
	assert.Equal(t, [][]float64{{1}}, matrix.Counts)
}

func TestThemesByProduct_Empty(t *testing.T) {
	matrix := ThemesByProduct(nil)
	assert.Empty(t, matrix.Products)
	assert.Empty(t, matrix.Themes)
	assert.Empty(t, matrix.Counts)
}
