package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimentscope/internal/models"
)

func TestSingleDefaults(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.SingleResult
	}{
		{
			name: "empty body",
			body: "",
			want: models.SingleResult{Sentiment: models.SentimentNeutral},
		},
		{
			name: "not an object",
			body: `"oops"`,
			want: models.SingleResult{Sentiment: models.SentimentNeutral},
		},
		{
			name: "missing everything",
			body: `{}`,
			want: models.SingleResult{Sentiment: models.SentimentNeutral},
		},
		{
			name: "unknown sentiment label",
			body: `{"sentiment":"Mixed","confidence":0.5}`,
			want: models.SingleResult{Sentiment: models.SentimentNeutral, Confidence: 0.5},
		},
		{
			name: "mis-typed fields",
			body: `{"sentiment":42,"confidence":"high","model_used":[1,2]}`,
			want: models.SingleResult{Sentiment: models.SentimentNeutral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Single([]byte(tt.body)))
		})
	}
}

func TestSingleConfidenceClamped(t *testing.T) {
	assert.Equal(t, 1.0, Single([]byte(`{"confidence":1.7}`)).Confidence)
	assert.Equal(t, 0.0, Single([]byte(`{"confidence":-0.3}`)).Confidence)
	assert.Equal(t, 0.92, Single([]byte(`{"confidence":0.92}`)).Confidence)
}

func TestSingleScores(t *testing.T) {
	got := Single([]byte(`{"sentiment":"Positive","confidence":0.9,"scores":{"negative":0.05,"neutral":0.05,"positive":0.9},"model_used":"Transformer"}`))
	require.Len(t, got.Scores, 3)
	assert.Equal(t, "negative", got.Scores[0].Label)
	assert.Equal(t, 0.9, got.Scores.Get("positive"))
	assert.Equal(t, "Transformer", got.ModelUsed)

	// Missing scores shape into an empty list, not nil-pointer territory.
	assert.Empty(t, Single([]byte(`{"sentiment":"Positive"}`)).Scores)
}

func TestBatchFullPayload(t *testing.T) {
	body := `{
		"summary": {
			"total_analyzed": 3,
			"sentiment_counts": {"positive": 2, "negative": 1, "neutral": 0},
			"sentiment_percentages": {"positive": 66.7, "negative": 33.3}
		},
		"word_frequencies": {"great": 2, "bad": 1},
		"results": [
			{"text": "great product", "sentiment": "Positive", "confidence": 0.91},
			{"text": "bad packaging", "sentiment": "Negative", "confidence": 0.84},
			{"text": "great value", "sentiment": "Positive", "confidence": 0.88}
		],
		"metadata": {"title": "Widget", "description": "A widget."},
		"ai_summary": "Mostly positive."
	}`

	got := Batch([]byte(body))

	assert.Equal(t, 3, got.Summary.TotalAnalyzed)
	assert.Equal(t, 2, got.Summary.SentimentCounts.Positive)
	assert.Equal(t, 1, got.Summary.SentimentCounts.Negative)
	assert.Equal(t, 66.7, got.Summary.SentimentPercentages.Positive)
	assert.Equal(t, 33.3, got.Summary.SentimentPercentages.Negative)
	assert.Equal(t, models.WordFrequencies{{Word: "great", Count: 2}, {Word: "bad", Count: 1}}, got.WordFrequencies)
	require.Len(t, got.Results, 3)
	assert.Equal(t, "great product", got.Results[0].Text)
	assert.Equal(t, models.SentimentPositive, got.Results[0].Sentiment)
	require.NotNil(t, got.Metadata)
	assert.Equal(t, "Widget", got.Metadata.Title)
	assert.Equal(t, "Mostly positive.", got.AISummary)
}

func TestBatchDefaults(t *testing.T) {
	got := Batch(nil)
	assert.Zero(t, got.Summary.TotalAnalyzed)
	assert.Empty(t, got.WordFrequencies)
	assert.Empty(t, got.Results)
	assert.Nil(t, got.Metadata)

	got = Batch([]byte(`[1,2,3]`))
	assert.Zero(t, got.Summary.TotalAnalyzed)
}

func TestBatchZeroTotalForcesZeroPercentages(t *testing.T) {
	body := `{"summary":{"total_analyzed":0,"sentiment_counts":{"positive":0,"negative":0},"sentiment_percentages":{"positive":48.5,"negative":51.5}}}`
	got := Batch([]byte(body))
	assert.Zero(t, got.Summary.SentimentPercentages.Positive)
	assert.Zero(t, got.Summary.SentimentPercentages.Negative)
}

func TestBatchNegativeAndMalformedCounts(t *testing.T) {
	body := `{"summary":{"total_analyzed":-4,"sentiment_counts":{"positive":-2,"negative":"zero"}},"word_frequencies":{"ok":-1,"fine":"nope","good":3}}`
	got := Batch([]byte(body))
	assert.Zero(t, got.Summary.TotalAnalyzed)
	assert.Zero(t, got.Summary.SentimentCounts.Positive)
	assert.Zero(t, got.Summary.SentimentCounts.Negative)
	assert.Equal(t, models.WordFrequencies{{Word: "ok", Count: 0}, {Word: "fine", Count: 0}, {Word: "good", Count: 3}}, got.WordFrequencies)
}

func TestBatchMissingItemTextBecomesEmptyString(t *testing.T) {
	got := Batch([]byte(`{"results":[{"sentiment":"Positive"},{"text":null},{"text":"fine"}]}`))
	require.Len(t, got.Results, 3)
	assert.Equal(t, "", got.Results[0].Text)
	assert.Equal(t, "", got.Results[1].Text)
	assert.Equal(t, "fine", got.Results[2].Text)
}

func TestResultDispatchByKind(t *testing.T) {
	single := Result(models.KindSingle, []byte(`{"sentiment":"Positive"}`))
	require.NotNil(t, single.Single)
	assert.Nil(t, single.Batch)

	for _, kind := range []models.RequestKind{models.KindBulk, models.KindURL} {
		batch := Result(kind, []byte(`{}`))
		require.NotNil(t, batch.Batch, "kind %s", kind)
		assert.Nil(t, batch.Single)
	}
}

func TestStats(t *testing.T) {
	got := Stats([]byte(`{"total_analyses":12,"sentiment_distribution":{"positive":7,"negative":5,"neutral":0},"by_type":{"single":4,"bulk":3,"csv":0,"url":5}}`))
	assert.Equal(t, 12, got.TotalAnalyses)
	assert.Equal(t, 7, got.SentimentDistribution.Positive)
	assert.Equal(t, 5, got.ByType.URL)

	assert.Zero(t, Stats(nil).TotalAnalyses)
	assert.Zero(t, Stats([]byte(`null`)).TotalAnalyses)
}

func TestHistory(t *testing.T) {
	body := `{"history":[
		{"id":"a","text":"loved it","sentiment":"Positive","confidence":0.9,"model_used":"Transformer","timestamp":"2025-01-01T00:00:00Z"},
		{"text":"meh"},
		{"sentiment":"Neutral"}
	]}`
	got := History([]byte(body))
	require.Len(t, got, 3)

	assert.True(t, got[0].HasSentiment)
	assert.Equal(t, models.SentimentPositive, got[0].Sentiment)

	assert.False(t, got[1].HasSentiment, "absent sentiment field must read as not present")
	assert.Equal(t, models.SentimentNeutral, got[1].Sentiment)

	assert.True(t, got[2].HasSentiment)
	assert.Equal(t, models.SentimentNeutral, got[2].Sentiment)

	assert.Empty(t, History([]byte(`{"history":"none"}`)))
	assert.Empty(t, History(nil))
}
