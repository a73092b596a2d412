package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentimentscope/config"
	"github.com/spacesedan/sentimentscope/internal/clients"
	"github.com/spacesedan/sentimentscope/internal/logging"
	"github.com/spacesedan/sentimentscope/internal/monitoring"
	"github.com/spacesedan/sentimentscope/internal/ui"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg := config.FromEnv()

	// The terminal belongs to the TUI, so logs go to a file (or nowhere).
	logging.InitFileLogger(cfg.LogFile)

	if !clients.BaseURLValid(cfg.APIURL) {
		fmt.Fprintf(os.Stderr, "invalid API URL: %q\n", cfg.APIURL)
		os.Exit(1)
	}
	client := clients.NewAPIClient(cfg.APIURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backendHealthy := &atomic.Bool{}
	go monitoring.MonitorBackendHealth(ctx, client, backendHealthy)

	program := tea.NewProgram(ui.NewApp(client, backendHealthy), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		slog.Error("[Main] Dashboard exited with error",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
