package main

import (
	"context"
	"os"

	"MediaObservatory/internal/app"
	"MediaObservatory/internal/config"
	"MediaObservatory/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}
