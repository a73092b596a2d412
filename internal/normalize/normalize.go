// Package normalize is the single validation boundary between the wire and
// the view layer. Every function here is total: a missing, null, or
// mis-typed field resolves to its documented default, and a body that is
// not a JSON object at all produces an all-default value. Nothing past
// this package needs defensive checks.
package normalize

import (
	"encoding/json"

	"github.com/spacesedan/sentimentscope/internal/models"
)

// Result shapes a successful analysis response body for the given request
// kind. KindSingle yields a SingleResult, KindBulk and KindURL a
// BatchResult.
func Result(kind models.RequestKind, body []byte) models.AnalysisResult {
	if kind == models.KindSingle {
		single := Single(body)
		return models.AnalysisResult{Kind: kind, Single: &single}
	}
	batch := Batch(body)
	return models.AnalysisResult{Kind: kind, Batch: &batch}
}

func Single(body []byte) models.SingleResult {
	fields := objectFields(body)
	return models.SingleResult{
		Text:       fieldString(fields, "text"),
		Sentiment:  models.ParseSentiment(fieldString(fields, "sentiment")),
		Confidence: clamp01(fieldFloat(fields, "confidence")),
		Scores:     fieldScores(fields, "scores"),
		ModelUsed:  fieldString(fields, "model_used"),
	}
}

func Batch(body []byte) models.BatchResult {
	fields := objectFields(body)

	summary := objectFields(fields["summary"])
	counts := objectFields(summary["sentiment_counts"])
	total := fieldInt(summary, "total_analyzed")

	batch := models.BatchResult{
		Summary: models.BatchSummary{
			TotalAnalyzed: total,
			SentimentCounts: models.SentimentCounts{
				Positive: fieldInt(counts, "positive"),
				Negative: fieldInt(counts, "negative"),
				Neutral:  fieldInt(counts, "neutral"),
			},
		},
		AISummary: fieldString(fields, "ai_summary"),
	}

	// Server-reported percentages are trusted as-is (they carry the
	// server's rounding), except under a zero total where they are forced
	// to 0 so the view never divides or charts an empty batch.
	if total > 0 {
		pcts := objectFields(summary["sentiment_percentages"])
		batch.Summary.SentimentPercentages = models.SentimentPercentages{
			Positive: fieldFloat(pcts, "positive"),
			Negative: fieldFloat(pcts, "negative"),
		}
	}

	if raw, ok := fields["word_frequencies"]; ok {
		// WordFrequencies.UnmarshalJSON is itself total.
		_ = json.Unmarshal(raw, &batch.WordFrequencies)
	}

	var rawItems []json.RawMessage
	if raw, ok := fields["results"]; ok {
		_ = json.Unmarshal(raw, &rawItems)
	}
	for _, rawItem := range rawItems {
		item := objectFields(rawItem)
		batch.Results = append(batch.Results, models.BatchItem{
			Text:       fieldString(item, "text"),
			Sentiment:  models.ParseSentiment(fieldString(item, "sentiment")),
			Confidence: clamp01(fieldFloat(item, "confidence")),
		})
	}

	if raw, ok := fields["metadata"]; ok {
		if meta := objectFields(raw); meta != nil {
			batch.Metadata = &models.URLMetadata{
				Title:       fieldString(meta, "title"),
				Description: fieldString(meta, "description"),
			}
		}
	}

	return batch
}

func Stats(body []byte) models.StatsResponse {
	fields := objectFields(body)
	dist := objectFields(fields["sentiment_distribution"])
	byType := objectFields(fields["by_type"])
	return models.StatsResponse{
		TotalAnalyses: fieldInt(fields, "total_analyses"),
		SentimentDistribution: models.SentimentDistribution{
			Positive: fieldInt(dist, "positive"),
			Negative: fieldInt(dist, "negative"),
			Neutral:  fieldInt(dist, "neutral"),
		},
		ByType: models.TypeCounts{
			Single: fieldInt(byType, "single"),
			Bulk:   fieldInt(byType, "bulk"),
			CSV:    fieldInt(byType, "csv"),
			URL:    fieldInt(byType, "url"),
		},
	}
}

func History(body []byte) []models.HistoryEntry {
	fields := objectFields(body)

	var rawItems []json.RawMessage
	if raw, ok := fields["history"]; ok {
		_ = json.Unmarshal(raw, &rawItems)
	}

	var entries []models.HistoryEntry
	for _, rawItem := range rawItems {
		item := objectFields(rawItem)
		label := fieldString(item, "sentiment")
		entries = append(entries, models.HistoryEntry{
			ID:           fieldString(item, "id"),
			Text:         fieldString(item, "text"),
			Sentiment:    models.ParseSentiment(label),
			HasSentiment: label != "",
			Confidence:   clamp01(fieldFloat(item, "confidence")),
			ModelUsed:    fieldString(item, "model_used"),
			Timestamp:    fieldString(item, "timestamp"),
		})
	}
	return entries
}

// objectFields decodes data as a JSON object, returning nil for anything
// else. Field lookups on a nil map fall through to defaults, which is what
// makes every normalizer total.
func objectFields(data []byte) map[string]json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func fieldString(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var val string
	if err := json.Unmarshal(raw, &val); err != nil {
		return ""
	}
	return val
}

func fieldFloat(fields map[string]json.RawMessage, key string) float64 {
	raw, ok := fields[key]
	if !ok {
		return 0
	}
	var val float64
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0
	}
	return val
}

// fieldInt reads a non-negative integer; negative and non-numeric values
// are treated as 0.
func fieldInt(fields map[string]json.RawMessage, key string) int {
	val := fieldFloat(fields, key)
	if val < 0 {
		return 0
	}
	return int(val)
}

func fieldScores(fields map[string]json.RawMessage, key string) models.SentimentScores {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var scores models.SentimentScores
	_ = json.Unmarshal(raw, &scores)
	return scores
}

func clamp01(val float64) float64 {
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}
