package ui

import (
	"context"

	"github.com/spacesedan/sentimentscope/internal/dashboard"
)

// AnalysisClient is the slice of the API client the analysis pages use.
type AnalysisClient interface {
	AnalyzeText(ctx context.Context, text string) ([]byte, error)
	AnalyzeBulk(ctx context.Context, texts []string) ([]byte, error)
	AnalyzeURL(ctx context.Context, target string) ([]byte, error)
}

// analysisResponseMsg delivers a settled network call back to the page
// that issued it. The token is checked by the orchestrator; stale
// responses are dropped there, not here.
type analysisResponseMsg struct {
	pageID string
	token  uint64
	body   []byte
	err    error
}

type dashboardLoadedMsg struct {
	vm dashboard.ViewModel
}
