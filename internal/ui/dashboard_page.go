package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentimentscope/internal/dashboard"
)

// DashboardPageModel shows aggregate stats and the recent-analysis feed.
type DashboardPageModel struct {
	client  dashboard.StatsHistoryClient
	styles  Styles
	vm      dashboard.ViewModel
	loaded  bool
	loading bool
	width   int
}

func NewDashboardPageModel(client dashboard.StatsHistoryClient, styles Styles) DashboardPageModel {
	return DashboardPageModel{client: client, styles: styles}
}

func (m DashboardPageModel) Init() tea.Cmd {
	return m.fetch()
}

func (m *DashboardPageModel) SetSize(w, h int) {
	m.width = w
}

func (m DashboardPageModel) fetch() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return dashboardLoadedMsg{vm: dashboard.Fetch(ctx, client, dashboard.DefaultHistoryLimit)}
	}
}

func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.vm = msg.vm
		m.loaded = true
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			return m, m.fetch()
		}
	}
	return m, nil
}

func (m DashboardPageModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("Dashboard"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Tagline.Render("Everything analyzed so far"))
	sb.WriteString("\n\n")

	if !m.loaded {
		sb.WriteString(m.styles.Muted.Render("Loading..."))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Total analyses: %s    Positive: %s    Recent: %s\n\n",
		m.styles.Section.Render(fmt.Sprintf("%d", m.vm.TotalAnalyses)),
		m.styles.Positive.Render(fmt.Sprintf("%d", m.vm.PositiveCount)),
		m.styles.Section.Render(fmt.Sprintf("%d", m.vm.RecentCount))))

	sb.WriteString(m.styles.Section.Render("Recent analyses"))
	sb.WriteString("\n")
	if len(m.vm.Recent) == 0 {
		sb.WriteString(m.styles.Muted.Render("No analyses yet. Run one from a source page."))
	}
	for _, recent := range m.vm.Recent {
		marker := m.styles.ForSentiment(recent.Sentiment).Render("●")
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, recent.Text))
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("   %s · %s · %s",
			recent.Sentiment, recent.ModelUsed, recent.Timestamp)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("r refresh"))
	return sb.String()
}
