// Package dashboard merges the stats and history feeds into the dashboard
// page's view model.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spacesedan/sentimentscope/internal/models"
	"github.com/spacesedan/sentimentscope/internal/normalize"
)

const DefaultHistoryLimit = 10

// Placeholder strings for history entries with missing fields, so nothing
// renders as an empty cell.
const (
	PlaceholderText      = "No text content"
	PlaceholderModel     = "Unknown"
	PlaceholderTimestamp = "Just now"
)

type RecentAnalysis struct {
	Text       string
	Sentiment  models.Sentiment
	Confidence float64
	ModelUsed  string
	Timestamp  string
}

type ViewModel struct {
	TotalAnalyses int
	PositiveCount int

	// Recent holds the non-neutral history entries, most recent first as
	// supplied by the backend. RecentCount == len(Recent).
	RecentCount int
	Recent      []RecentAnalysis
}

// Build computes the dashboard view model. History entries without a
// sentiment field count as Neutral and are excluded from the recent list.
func Build(stats models.StatsResponse, history []models.HistoryEntry) ViewModel {
	vm := ViewModel{
		TotalAnalyses: stats.TotalAnalyses,
		PositiveCount: stats.SentimentDistribution.Positive,
	}

	for _, entry := range history {
		if !entry.HasSentiment || entry.Sentiment == models.SentimentNeutral {
			continue
		}
		vm.Recent = append(vm.Recent, RecentAnalysis{
			Text:       orPlaceholder(entry.Text, PlaceholderText),
			Sentiment:  entry.Sentiment,
			Confidence: entry.Confidence,
			ModelUsed:  orPlaceholder(entry.ModelUsed, PlaceholderModel),
			Timestamp:  orPlaceholder(entry.Timestamp, PlaceholderTimestamp),
		})
	}
	vm.RecentCount = len(vm.Recent)
	return vm
}

// StatsHistoryClient is the slice of the API client the dashboard needs.
type StatsHistoryClient interface {
	Stats(ctx context.Context) ([]byte, error)
	History(ctx context.Context, limit int) ([]byte, error)
}

// Fetch issues the stats and history requests concurrently and builds the
// view model once both have settled. A failed fetch contributes its
// zero-value default instead of failing the page.
func Fetch(ctx context.Context, client StatsHistoryClient, limit int) ViewModel {
	var (
		wg          sync.WaitGroup
		statsBody   []byte
		historyBody []byte
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		body, err := client.Stats(ctx)
		if err != nil {
			slog.Warn("[Dashboard] Stats fetch failed",
				slog.String("error", err.Error()))
			return
		}
		statsBody = body
	}()
	go func() {
		defer wg.Done()
		body, err := client.History(ctx, limit)
		if err != nil {
			slog.Warn("[Dashboard] History fetch failed",
				slog.String("error", err.Error()))
			return
		}
		historyBody = body
	}()
	wg.Wait()

	return Build(normalize.Stats(statsBody), normalize.History(historyBody))
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
