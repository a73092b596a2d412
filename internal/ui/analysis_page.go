package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/glamour"

	"github.com/spacesedan/sentimentscope/internal/clients"
	"github.com/spacesedan/sentimentscope/internal/derive"
	"github.com/spacesedan/sentimentscope/internal/models"
	"github.com/spacesedan/sentimentscope/internal/orchestrator"
	"github.com/spacesedan/sentimentscope/internal/search"
)

const collapsedResultCount = 5

var kindCycle = []models.RequestKind{models.KindSingle, models.KindBulk, models.KindURL}

// AnalysisPageModel drives one analysis page. Both pages are this same
// model instantiated with different PageCopy.
type AnalysisPageModel struct {
	copy   PageCopy
	client AnalysisClient
	styles Styles

	kind      models.RequestKind
	input     textarea.Model
	searchBox textinput.Model
	spin      spinner.Model

	state orchestrator.State

	// Derived views cached when a response is applied, so View stays a
	// pure read.
	series    derive.Series
	scoreBars []derive.ScoreBar
	aiSummary string

	notice    string
	expanded  bool
	searching bool
	width     int
	height    int
}

func NewAnalysisPageModel(copy PageCopy, client AnalysisClient, styles Styles) AnalysisPageModel {
	input := textarea.New()
	input.Placeholder = copy.SinglePrompt
	input.SetHeight(4)
	input.Focus()

	searchBox := textinput.New()
	searchBox.Placeholder = "filter results"
	searchBox.Prompt = "/ "

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return AnalysisPageModel{
		copy:      copy,
		client:    client,
		styles:    styles,
		kind:      models.KindSingle,
		input:     input,
		searchBox: searchBox,
		spin:      spin,
	}
}

func (m AnalysisPageModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *AnalysisPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.SetWidth(w - 6)
	m.searchBox.Width = w / 3
}

// State exposes the orchestrator state for the app's status line.
func (m AnalysisPageModel) State() orchestrator.State { return m.state }

func (m AnalysisPageModel) Update(msg tea.Msg) (AnalysisPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state.Phase == orchestrator.PhaseLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case analysisResponseMsg:
		if msg.pageID != m.copy.ID {
			return m, nil
		}
		next, applied := m.state.Resolve(msg.token, msg.body, msg.err)
		m.state = next
		if applied && next.Phase == orchestrator.PhaseSuccess {
			m.cacheDerived(next.Result)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			m.cycleKind()
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		case "ctrl+e":
			m.expanded = !m.expanded
			return m, nil
		case "ctrl+f":
			m.searching = true
			m.input.Blur()
			return m, m.searchBox.Focus()
		case "esc":
			m.searching = false
			m.searchBox.Blur()
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	if m.searching {
		m.searchBox, cmd = m.searchBox.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *AnalysisPageModel) cycleKind() {
	for i, kind := range kindCycle {
		if kind == m.kind {
			m.kind = kindCycle[(i+1)%len(kindCycle)]
			break
		}
	}
	m.notice = ""
	switch m.kind {
	case models.KindSingle:
		m.input.Placeholder = m.copy.SinglePrompt
	case models.KindBulk:
		m.input.Placeholder = m.copy.BulkPrompt
	case models.KindURL:
		m.input.Placeholder = m.copy.URLPrompt
	}
}

// submit runs the orchestrator transition and, when accepted, returns the
// command that performs the one network call for this token.
func (m *AnalysisPageModel) submit() tea.Cmd {
	next, req, err := m.state.Submit(m.kind, m.input.Value())
	if err != nil {
		m.notice = err.Error()
		return nil
	}

	m.state = next
	m.notice = ""
	m.series = derive.Series{}
	m.scoreBars = nil
	m.aiSummary = ""

	client := m.client
	pageID := m.copy.ID
	call := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clients.DEFAULT_TIMEOUT)
		defer cancel()

		var body []byte
		var err error
		switch req.Kind {
		case models.KindSingle:
			body, err = client.AnalyzeText(ctx, req.Text)
		case models.KindBulk:
			body, err = client.AnalyzeBulk(ctx, req.Texts)
		case models.KindURL:
			body, err = client.AnalyzeURL(ctx, req.URL)
		}
		return analysisResponseMsg{pageID: pageID, token: req.Token, body: body, err: err}
	}
	return tea.Batch(m.spin.Tick, call)
}

func (m *AnalysisPageModel) cacheDerived(result *models.AnalysisResult) {
	if result.Single != nil {
		m.scoreBars = derive.ScoreBars(*result.Single)
		return
	}
	if result.Batch != nil {
		m.series = derive.BatchSeries(*result.Batch)
		if result.Batch.AISummary != "" {
			if rendered, err := glamour.Render(result.Batch.AISummary, "dark"); err == nil {
				m.aiSummary = strings.TrimSpace(rendered)
			} else {
				m.aiSummary = result.Batch.AISummary
			}
		}
	}
}

func (m AnalysisPageModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.copy.Title))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Tagline.Render(m.copy.Tagline))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderModeLine())
	sb.WriteString("\n")
	if m.kind == models.KindURL {
		sb.WriteString(m.styles.Muted.Render("Supported: " + strings.Join(m.copy.SupportedLinks, ", ")))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.InputBox.Render(m.input.View()))
	sb.WriteString("\n")

	switch m.state.Phase {
	case orchestrator.PhaseLoading:
		sb.WriteString(m.spin.View())
		sb.WriteString(m.styles.Muted.Render(" Analyzing..."))
		sb.WriteString("\n")
	case orchestrator.PhaseError:
		sb.WriteString(m.styles.Error.Render("✗ " + m.state.ErrMessage))
		sb.WriteString("\n")
	}
	if m.notice != "" {
		sb.WriteString(m.styles.Notice.Render(m.notice))
		sb.WriteString("\n")
	}

	if result := m.renderResult(); result != "" {
		sb.WriteString("\n")
		sb.WriteString(result)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("ctrl+t mode · ctrl+s submit · ctrl+f filter · ctrl+e expand · esc back"))
	return sb.String()
}

func (m AnalysisPageModel) renderModeLine() string {
	labels := map[models.RequestKind]string{
		models.KindSingle: "Single",
		models.KindBulk:   "Bulk",
		models.KindURL:    "URL",
	}
	parts := make([]string, 0, len(kindCycle))
	for _, kind := range kindCycle {
		if kind == m.kind {
			parts = append(parts, m.styles.ActiveTab.Render(labels[kind]))
		} else {
			parts = append(parts, m.styles.Tab.Render(labels[kind]))
		}
	}
	return "Mode: " + strings.Join(parts, " ")
}

func (m AnalysisPageModel) renderResult() string {
	if m.state.Result == nil {
		return ""
	}
	if m.state.Result.Single != nil {
		return m.renderSingle(*m.state.Result.Single)
	}
	if m.state.Result.Batch != nil {
		return m.renderBatch(*m.state.Result.Batch)
	}
	return ""
}

func (m AnalysisPageModel) renderSingle(single models.SingleResult) string {
	var sb strings.Builder

	style := m.styles.ForSentiment(single.Sentiment)
	sb.WriteString(fmt.Sprintf("Sentiment: %s  (%.0f%% confident)",
		style.Bold(true).Render(string(single.Sentiment)),
		single.Confidence*100))
	sb.WriteString("\n")

	if bars := RenderScoreBars(m.scoreBars, m.styles); bars != "" {
		sb.WriteString("\n")
		sb.WriteString(bars)
		sb.WriteString("\n")
	}
	if single.ModelUsed != "" {
		sb.WriteString(m.styles.Muted.Render("Model: " + single.ModelUsed))
	}
	return sb.String()
}

func (m AnalysisPageModel) renderBatch(batch models.BatchResult) string {
	var sb strings.Builder

	if batch.Metadata != nil && batch.Metadata.Title != "" {
		sb.WriteString(m.styles.Section.Render(batch.Metadata.Title))
		sb.WriteString("\n")
		if batch.Metadata.Description != "" {
			sb.WriteString(m.styles.Muted.Render(batch.Metadata.Description))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Section.Render(fmt.Sprintf("Summary — %d analyzed", batch.Summary.TotalAnalyzed)))
	sb.WriteString("\n")
	sb.WriteString(RenderSentimentSplit(m.series, m.styles))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Section.Render("Top words"))
	sb.WriteString("\n")
	sb.WriteString(RenderWordBars(m.series.WordBars, m.styles))
	sb.WriteString("\n")

	if m.aiSummary != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Section.Render("AI summary"))
		sb.WriteString("\n")
		sb.WriteString(m.aiSummary)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderResults(batch))
	return sb.String()
}

func (m AnalysisPageModel) renderResults(batch models.BatchResult) string {
	filtered := search.Filter(batch.Results, m.searchBox.Value())

	var sb strings.Builder
	sb.WriteString(m.styles.Section.Render(fmt.Sprintf("%s (%d/%d)", m.copy.ResultsLabel, len(filtered), len(batch.Results))))
	if m.searching || m.searchBox.Value() != "" {
		sb.WriteString("  ")
		sb.WriteString(m.searchBox.View())
	}
	sb.WriteString("\n")

	if len(filtered) == 0 {
		sb.WriteString(m.styles.Muted.Render("Nothing to show."))
		return sb.String()
	}

	shown := filtered
	if !m.expanded && len(shown) > collapsedResultCount {
		shown = shown[:collapsedResultCount]
	}
	for _, item := range shown {
		marker := m.styles.ForSentiment(item.Sentiment).Render("●")
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, item.Text))
	}
	if hidden := len(filtered) - len(shown); hidden > 0 {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("… %d more (ctrl+e to expand)", hidden)))
	}
	return sb.String()
}
