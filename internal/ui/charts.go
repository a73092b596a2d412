package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/sentimentscope/internal/derive"
	"github.com/spacesedan/sentimentscope/internal/models"
)

const NoDataMessage = "No data to display"

const chartBarWidth = 24

// RenderSentimentSplit draws the positive/negative polarity split as a
// single proportional bar with counts and the server-reported percentages
// underneath.
func RenderSentimentSplit(series derive.Series, styles Styles) string {
	if !series.HasData {
		return styles.Muted.Render(NoDataMessage)
	}

	positive := series.Pie[0].Value
	negative := series.Pie[1].Value
	total := positive + negative

	var bar string
	if total > 0 {
		posCells := positive * chartBarWidth / total
		bar = styles.Positive.Render(strings.Repeat("█", posCells)) +
			styles.Negative.Render(strings.Repeat("█", chartBarWidth-posCells))
	} else {
		bar = styles.Muted.Render(strings.Repeat("░", chartBarWidth))
	}

	var sb strings.Builder
	sb.WriteString(bar)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %d (%.1f%%)   %s %d (%.1f%%)",
		styles.Positive.Render("■ Positive"), positive, series.Percentages[0].Value,
		styles.Negative.Render("■ Negative"), negative, series.Percentages[1].Value,
	))
	return sb.String()
}

// RenderWordBars draws the top-word horizontal bar chart. Bars are scaled
// against the largest count.
func RenderWordBars(bars []derive.WordBar, styles Styles) string {
	if len(bars) == 0 {
		return styles.Muted.Render(NoDataMessage)
	}

	maxCount := bars[0].Count
	for _, bar := range bars {
		if bar.Count > maxCount {
			maxCount = bar.Count
		}
	}

	wordWidth := 0
	for _, bar := range bars {
		if w := lipgloss.Width(bar.Word); w > wordWidth {
			wordWidth = w
		}
	}

	var sb strings.Builder
	for i, bar := range bars {
		if i > 0 {
			sb.WriteString("\n")
		}
		cells := 1
		if maxCount > 0 {
			cells = bar.Count * chartBarWidth / maxCount
			if cells < 1 {
				cells = 1
			}
		}
		sb.WriteString(fmt.Sprintf("%-*s %s %d",
			wordWidth, bar.Word,
			lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("▇", cells)),
			bar.Count))
	}
	return sb.String()
}

// Score labels arrive lowercase on the wire.
func sentimentForScoreLabel(label string) models.Sentiment {
	switch label {
	case "positive":
		return models.SentimentPositive
	case "negative":
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// RenderScoreBars draws a single result's score distribution. No scores,
// no bars.
func RenderScoreBars(bars []derive.ScoreBar, styles Styles) string {
	if len(bars) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, bar := range bars {
		if i > 0 {
			sb.WriteString("\n")
		}
		cells := int(bar.Value * chartBarWidth)
		if cells < 0 {
			cells = 0
		}
		if cells > chartBarWidth {
			cells = chartBarWidth
		}
		style := styles.ForSentiment(sentimentForScoreLabel(bar.Label))
		sb.WriteString(fmt.Sprintf("%-8s %s %.2f",
			bar.Label,
			style.Render(strings.Repeat("▇", cells)+strings.Repeat("░", chartBarWidth-cells)),
			bar.Value))
	}
	return sb.String()
}
