package models

type RequestKind string

const (
	KindSingle RequestKind = "single"
	KindBulk   RequestKind = "bulk"
	KindURL    RequestKind = "url"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ParseSentiment maps a wire label to a known Sentiment.
// Anything unrecognized (including the empty string) is Neutral.
func ParseSentiment(label string) Sentiment {
	switch label {
	case string(SentimentPositive):
		return SentimentPositive
	case string(SentimentNegative):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

type SingleResult struct {
	Text       string          `json:"text,omitempty"`
	Sentiment  Sentiment       `json:"sentiment"`
	Confidence float64         `json:"confidence"`
	Scores     SentimentScores `json:"scores"`
	ModelUsed  string          `json:"model_used"`
}

type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type SentimentPercentages struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

type BatchSummary struct {
	TotalAnalyzed        int                  `json:"total_analyzed"`
	SentimentCounts      SentimentCounts      `json:"sentiment_counts"`
	SentimentPercentages SentimentPercentages `json:"sentiment_percentages"`
}

type BatchItem struct {
	Text       string    `json:"text"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
}

type URLMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BatchResult struct {
	Summary         BatchSummary    `json:"summary"`
	WordFrequencies WordFrequencies `json:"word_frequencies"`
	Results         []BatchItem     `json:"results"`
	Metadata        *URLMetadata    `json:"metadata,omitempty"`
	AISummary       string          `json:"ai_summary,omitempty"`
}

// AnalysisResult holds the normalized payload of exactly one request kind.
// Single is set for KindSingle, Batch for KindBulk and KindURL.
type AnalysisResult struct {
	Kind   RequestKind
	Single *SingleResult
	Batch  *BatchResult
}
