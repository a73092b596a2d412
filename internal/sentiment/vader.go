// Package sentiment is the devserver's local analyzer: VADER polarity
// scoring over cleaned plain text, matching the production backend's
// fallback analysis path.
package sentiment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentimentscope/internal/models"
)

const ModelName = "VADER"

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Informal web slang that VADER misreads; flipped to its plain-English
// sentiment before scoring.
var sentimentFlips = map[string]string{
	"underrated": "amazing",
	"underdog":   "winner",
	"goat":       "best",
	"banger":     "amazing song",
	"dope":       "amazing",
	"sick":       "amazing",
	"fire":       "amazing",
	"lit":        "amazing",
	"beast":      "amazing",
	"slaps":      "amazing",
	"addicted":   "loving",
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields("the a an and or but in on at to for of with is was are were been be have has had do does did will would should could may might can this that these those i you he she it we they my your his her its our their") {
		stopWords[w] = struct{}{}
	}
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern      = regexp.MustCompile(`@\w+`)
	nonWordPattern      = regexp.MustCompile(`[^a-zA-Z0-9\s!?.,]`)
	spacePattern        = regexp.MustCompile(`\s+`)
)

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// CleanText lowercases, strips links and mentions, applies the slang
// flips, and drops everything outside basic punctuation.
func CleanText(input string) string {
	text := strings.ToLower(ConvertMarkdownToText(input))
	text = mentionPattern.ReplaceAllString(text, "")

	words := strings.Fields(text)
	for i, word := range words {
		if flipped, ok := sentimentFlips[word]; ok {
			words[i] = flipped
		}
	}
	text = strings.Join(words, " ")

	text = nonWordPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// Analyze scores a single text. Blank or fully-stripped input yields the
// Neutral default the production backend returns for empty text.
func Analyze(text string) models.SingleResult {
	cleaned := CleanText(text)
	if cleaned == "" {
		return emptyResult(text)
	}

	scores := analyzer.PolarityScores(cleaned)

	var label models.Sentiment
	var confidence float64
	switch {
	case scores.Compound >= 0.05:
		label = models.SentimentPositive
		confidence = scores.Positive
	case scores.Compound <= -0.05:
		label = models.SentimentNegative
		confidence = scores.Negative
	default:
		label = models.SentimentNeutral
		confidence = scores.Neutral
	}

	return models.SingleResult{
		Text:       truncate(text, 200),
		Sentiment:  label,
		Confidence: confidence,
		Scores: models.SentimentScores{
			{Label: "negative", Value: scores.Negative},
			{Label: "neutral", Value: scores.Neutral},
			{Label: "positive", Value: scores.Positive},
		},
		ModelUsed: ModelName,
	}
}

func emptyResult(text string) models.SingleResult {
	return models.SingleResult{
		Text:       truncate(text, 200),
		Sentiment:  models.SentimentNeutral,
		Confidence: 0.33,
		Scores: models.SentimentScores{
			{Label: "negative", Value: 0.33},
			{Label: "neutral", Value: 0.34},
			{Label: "positive", Value: 0.33},
		},
		ModelUsed: "None",
	}
}

// WordFrequencies counts tokens across all texts after cleaning, dropping
// stopwords and tokens of one or two characters. At most the 50 most
// frequent words are returned, ordered by descending count with ties in
// first-seen order.
func WordFrequencies(texts []string) models.WordFrequencies {
	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		for _, word := range strings.Fields(CleanText(text)) {
			word = strings.Trim(word, "!?.,")
			if len(word) <= 2 {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	freqs := make(models.WordFrequencies, 0, len(order))
	for _, word := range order {
		freqs = append(freqs, models.WordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	if len(freqs) > 50 {
		freqs = freqs[:50]
	}
	return freqs
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
