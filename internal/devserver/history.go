package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/sentimentscope/internal/models"
)

type historyRecord struct {
	models.HistoryEntry
	Kind models.RequestKind
}

// historyStore keeps analysis history in memory for the lifetime of the
// process. Appends and snapshots are guarded by one mutex; readers always
// get copies.
type historyStore struct {
	mu      sync.Mutex
	records []historyRecord
}

func newHistoryStore() *historyStore {
	return &historyStore{}
}

func (h *historyStore) Add(kind models.RequestKind, text string, result models.SingleResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, historyRecord{
		Kind: kind,
		HistoryEntry: models.HistoryEntry{
			ID:         uuid.NewString(),
			Text:       truncate(text, 500),
			Sentiment:  result.Sentiment,
			Confidence: result.Confidence,
			ModelUsed:  result.ModelUsed,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// Recent returns up to limit entries, most recent first.
func (h *historyStore) Recent(limit int) []models.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit <= 0 || limit > len(h.records) {
		limit = len(h.records)
	}
	entries := make([]models.HistoryEntry, 0, limit)
	for i := len(h.records) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, h.records[i].HistoryEntry)
	}
	return entries
}

// Stats aggregates the whole store. Neutral stays 0 in the distribution:
// the backend only tracks polarity.
func (h *historyStore) Stats() models.StatsResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := models.StatsResponse{TotalAnalyses: len(h.records)}
	for _, record := range h.records {
		switch record.Sentiment {
		case models.SentimentPositive:
			stats.SentimentDistribution.Positive++
		case models.SentimentNegative:
			stats.SentimentDistribution.Negative++
		}
		switch record.Kind {
		case models.KindSingle:
			stats.ByType.Single++
		case models.KindBulk:
			stats.ByType.Bulk++
		case models.KindURL:
			stats.ByType.URL++
		}
	}
	return stats
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
