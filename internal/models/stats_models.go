package models

type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type TypeCounts struct {
	Single int `json:"single"`
	Bulk   int `json:"bulk"`
	CSV    int `json:"csv"`
	URL    int `json:"url"`
}

type StatsResponse struct {
	TotalAnalyses         int                   `json:"total_analyses"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	ByType                TypeCounts            `json:"by_type"`
}

type HistoryEntry struct {
	ID         string    `json:"id,omitempty"`
	Text       string    `json:"text"`
	Sentiment  Sentiment `json:"sentiment,omitempty"`
	Confidence float64   `json:"confidence"`
	ModelUsed  string    `json:"model_used,omitempty"`
	Timestamp  string    `json:"timestamp,omitempty"`

	// HasSentiment distinguishes an absent wire field from an explicit
	// Neutral; entries without one are treated as Neutral downstream.
	HasSentiment bool `json:"-"`
}

type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
	Count   int            `json:"count"`
}
