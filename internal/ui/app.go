package ui

import (
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentimentscope/internal/clients"
)

type pageIndex int

const (
	pageSocial pageIndex = iota
	pageReviews
	pageDashboard
)

// App is the root bubbletea model. It owns the three pages and routes
// messages to whichever is active; response messages carry a page ID so
// they reach the right analysis page even when another is on screen.
type App struct {
	styles Styles

	social    AnalysisPageModel
	reviews   AnalysisPageModel
	dashboard DashboardPageModel

	active  pageIndex
	healthy *atomic.Bool
	width   int
	height  int
}

func NewApp(client *clients.APIClient, healthy *atomic.Bool) App {
	styles := DefaultStyles()
	return App{
		styles:    styles,
		social:    NewAnalysisPageModel(SocialCopy(), client, styles),
		reviews:   NewAnalysisPageModel(ReviewsCopy(), client, styles),
		dashboard: NewDashboardPageModel(client, styles),
		healthy:   healthy,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.social.Init(), a.dashboard.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.social.SetSize(msg.Width, msg.Height)
		a.reviews.SetSize(msg.Width, msg.Height)
		a.dashboard.SetSize(msg.Width, msg.Height)
		return a, nil

	case analysisResponseMsg:
		// Deliver to the owning page regardless of which is active.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.social, cmd = a.social.Update(msg)
		cmds = append(cmds, cmd)
		a.reviews, cmd = a.reviews.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case dashboardLoadedMsg:
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "f1":
			a.active = pageSocial
			return a, nil
		case "f2":
			a.active = pageReviews
			return a, nil
		case "f3":
			a.active = pageDashboard
			return a, a.dashboard.fetch()
		}
	}

	var cmd tea.Cmd
	switch a.active {
	case pageSocial:
		a.social, cmd = a.social.Update(msg)
	case pageReviews:
		a.reviews, cmd = a.reviews.Update(msg)
	case pageDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var sb strings.Builder

	sb.WriteString(a.renderTabs())
	sb.WriteString("\n\n")

	switch a.active {
	case pageSocial:
		sb.WriteString(a.social.View())
	case pageReviews:
		sb.WriteString(a.reviews.View())
	case pageDashboard:
		sb.WriteString(a.dashboard.View())
	}

	sb.WriteString("\n")
	sb.WriteString(a.styles.Help.Render("f1 social · f2 reviews · f3 dashboard · ctrl+c quit"))
	return sb.String()
}

func (a App) renderTabs() string {
	names := []string{"Social Pulse", "Review Radar", "Dashboard"}
	parts := make([]string, 0, len(names)+1)
	for i, name := range names {
		if pageIndex(i) == a.active {
			parts = append(parts, a.styles.ActiveTab.Render(name))
		} else {
			parts = append(parts, a.styles.Tab.Render(name))
		}
	}
	parts = append(parts, a.renderHealth())
	return strings.Join(parts, "  ")
}

func (a App) renderHealth() string {
	if a.healthy == nil {
		return ""
	}
	if a.healthy.Load() {
		return a.styles.Online.Render("● online")
	}
	return a.styles.Offline.Render("● offline")
}
