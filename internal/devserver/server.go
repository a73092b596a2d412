// Package devserver implements the SentimentScope API contract locally so
// the dashboard can be developed and tested without the production ML
// backend. Analysis runs through the VADER analyzer; history lives in
// memory for the lifetime of the process.
package devserver

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentimentscope/internal/models"
	"github.com/spacesedan/sentimentscope/internal/sentiment"
)

const MAX_BULK_TEXTS = 100

type Server struct {
	router  *gin.Engine
	history *historyStore
}

func New() *Server {
	s := &Server{history: newHistoryStore()}

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.GET("/", s.root)
	api.POST("/analyze/text", s.analyzeText)
	api.POST("/analyze/bulk", s.analyzeBulk)
	api.POST("/analyze/url", s.analyzeURL)
	api.GET("/history", s.getHistory)
	api.GET("/stats", s.getStats)

	s.router = router
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Run(addr string) error {
	slog.Info("[DevServer] Listening", slog.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "SentimentScope API (dev)",
		"version": "1.0.0",
		"endpoints": gin.H{
			"analyze_text": "/api/analyze/text",
			"analyze_bulk": "/api/analyze/bulk",
			"analyze_url":  "/api/analyze/url",
			"get_history":  "/api/history",
			"get_stats":    "/api/stats",
		},
	})
}

func (s *Server) analyzeText(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	result := sentiment.Analyze(input.Text)
	s.history.Add(models.KindSingle, input.Text, result)

	c.JSON(http.StatusOK, result)
}

func (s *Server) analyzeBulk(c *gin.Context) {
	var input struct {
		Texts []string `json:"texts"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if len(input.Texts) > MAX_BULK_TEXTS {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Maximum 100 texts allowed"})
		return
	}

	batch, singles := analyzeBatch(input.Texts)
	for i, single := range singles {
		if i >= 10 {
			break
		}
		s.history.Add(models.KindBulk, single.Text, single)
	}

	c.JSON(http.StatusOK, batch)
}

func (s *Server) analyzeURL(c *gin.Context) {
	var input struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if isVideoURL(input.URL) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": videoScrapeDetail})
		return
	}

	content := contentForURL(input.URL)
	batch, _ := analyzeBatch(content.Texts)
	batch.Metadata = &models.URLMetadata{
		Title:       content.Title,
		Description: content.Description,
	}
	batch.AISummary = composeSummary(content.Title, batch.Summary)

	overall := overallSentiment(batch.Summary.SentimentCounts)
	s.history.Add(models.KindURL, "URL Analysis: "+input.URL, models.SingleResult{
		Sentiment:  overall,
		Confidence: 0.8,
		ModelUsed:  sentiment.ModelName,
	})

	c.JSON(http.StatusOK, batch)
}

func (s *Server) getHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		limit = 50
	}
	entries := s.history.Recent(limit)
	c.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
}

func (s *Server) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.history.Stats())
}

func analyzeBatch(texts []string) (models.BatchResult, []models.SingleResult) {
	singles := make([]models.SingleResult, 0, len(texts))
	batch := models.BatchResult{Results: make([]models.BatchItem, 0, len(texts))}

	for _, text := range texts {
		single := sentiment.Analyze(text)
		singles = append(singles, single)
		batch.Results = append(batch.Results, models.BatchItem{
			Text:       single.Text,
			Sentiment:  single.Sentiment,
			Confidence: single.Confidence,
		})
		switch single.Sentiment {
		case models.SentimentPositive:
			batch.Summary.SentimentCounts.Positive++
		case models.SentimentNegative:
			batch.Summary.SentimentCounts.Negative++
		}
	}

	total := len(singles)
	batch.Summary.TotalAnalyzed = total
	if total > 0 {
		batch.Summary.SentimentPercentages = models.SentimentPercentages{
			Positive: round2(float64(batch.Summary.SentimentCounts.Positive) / float64(total) * 100),
			Negative: round2(float64(batch.Summary.SentimentCounts.Negative) / float64(total) * 100),
		}
	}
	batch.WordFrequencies = sentiment.WordFrequencies(texts)

	return batch, singles
}

func overallSentiment(counts models.SentimentCounts) models.Sentiment {
	switch {
	case counts.Positive > counts.Negative:
		return models.SentimentPositive
	case counts.Negative > counts.Positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func composeSummary(title string, summary models.BatchSummary) string {
	if summary.TotalAnalyzed == 0 {
		return "No comments available to analyze."
	}
	return fmt.Sprintf(
		"**%s** — %d comments analyzed: %d positive, %d negative. Overall sentiment: **%s**.",
		title,
		summary.TotalAnalyzed,
		summary.SentimentCounts.Positive,
		summary.SentimentCounts.Negative,
		overallSentiment(summary.SentimentCounts),
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
