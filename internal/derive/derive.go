// Package derive turns normalized results into renderable chart series.
// It only ever reads its inputs; all absent-field handling already
// happened in normalize.
package derive

import (
	"sort"

	"github.com/spacesedan/sentimentscope/internal/models"
)

const MaxWordBars = 10

type PieSlice struct {
	Label models.Sentiment
	Value int
}

type PercentagePoint struct {
	Label models.Sentiment
	Value float64
}

type WordBar struct {
	Word  string
	Count int
}

type ScoreBar struct {
	Label string
	Value float64
}

type Series struct {
	// Pie and Percentages chart polarity only: Neutral is excluded from
	// both by product decision.
	Pie         []PieSlice
	Percentages []PercentagePoint
	WordBars    []WordBar

	// HasData is false for an empty batch; the view renders a "no data"
	// placeholder instead of a zero-size chart.
	HasData bool
}

func BatchSeries(batch models.BatchResult) Series {
	summary := batch.Summary
	return Series{
		Pie: []PieSlice{
			{Label: models.SentimentPositive, Value: summary.SentimentCounts.Positive},
			{Label: models.SentimentNegative, Value: summary.SentimentCounts.Negative},
		},
		Percentages: []PercentagePoint{
			{Label: models.SentimentPositive, Value: summary.SentimentPercentages.Positive},
			{Label: models.SentimentNegative, Value: summary.SentimentPercentages.Negative},
		},
		WordBars: topWords(batch.WordFrequencies),
		HasData:  summary.TotalAnalyzed > 0,
	}
}

// topWords orders by descending count and keeps at most MaxWordBars
// entries. The sort is stable so equal counts keep their wire order.
func topWords(freqs models.WordFrequencies) []WordBar {
	bars := make([]WordBar, 0, len(freqs))
	for _, wc := range freqs {
		bars = append(bars, WordBar{Word: wc.Word, Count: wc.Count})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Count > bars[j].Count
	})
	if len(bars) > MaxWordBars {
		bars = bars[:MaxWordBars]
	}
	return bars
}

// ScoreBars maps a single result's raw score distribution to bars in wire
// order. A result without scores yields no bars.
func ScoreBars(single models.SingleResult) []ScoreBar {
	bars := make([]ScoreBar, 0, len(single.Scores))
	for _, score := range single.Scores {
		bars = append(bars, ScoreBar{Label: score.Label, Value: score.Value})
	}
	return bars
}
