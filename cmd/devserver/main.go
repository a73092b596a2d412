package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentimentscope/config"
	"github.com/spacesedan/sentimentscope/internal/devserver"
	"github.com/spacesedan/sentimentscope/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.FromEnv()
	server := devserver.New()

	slog.Info("[Main] Dev server listening",
		slog.String("addr", cfg.ServerAddr))
	if err := server.Run(cfg.ServerAddr); err != nil {
		slog.Error("[Main] Dev server failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
