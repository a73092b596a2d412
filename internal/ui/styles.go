// Package ui implements the terminal dashboard: two analysis pages and a
// stats page over the SentimentScope API.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/sentimentscope/internal/models"
)

var (
	ColorPositive = lipgloss.Color("#8BC34A")
	ColorNegative = lipgloss.Color("#e53935")
	ColorNeutral  = lipgloss.Color("#9e9e9e")
	ColorAccent   = lipgloss.Color("#4db6ac")
	ColorWarning  = lipgloss.Color("#FFC107")
	ColorMuted    = lipgloss.Color("#6b7280")
	ColorBorder   = lipgloss.Color("#2a3850")
)

type Styles struct {
	Header    lipgloss.Style
	Tagline   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Section   lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Notice    lipgloss.Style
	Positive  lipgloss.Style
	Negative  lipgloss.Style
	Neutral   lipgloss.Style
	InputBox  lipgloss.Style
	Help      lipgloss.Style
	Online    lipgloss.Style
	Offline   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Tagline:   lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Tab:       lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Underline(true).Padding(0, 1),
		Section:   lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
		Error:     lipgloss.NewStyle().Foreground(ColorNegative).Bold(true),
		Notice:    lipgloss.NewStyle().Foreground(ColorWarning),
		Positive:  lipgloss.NewStyle().Foreground(ColorPositive),
		Negative:  lipgloss.NewStyle().Foreground(ColorNegative),
		Neutral:   lipgloss.NewStyle().Foreground(ColorNeutral),
		InputBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(ColorMuted),
		Online:    lipgloss.NewStyle().Foreground(ColorPositive),
		Offline:   lipgloss.NewStyle().Foreground(ColorNegative),
	}
}

func (s Styles) ForSentiment(sentiment models.Sentiment) lipgloss.Style {
	switch sentiment {
	case models.SentimentPositive:
		return s.Positive
	case models.SentimentNegative:
		return s.Negative
	default:
		return s.Neutral
	}
}
