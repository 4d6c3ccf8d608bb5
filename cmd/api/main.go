package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "mbg_outreach/docs"
	"mbg_outreach/internal/adapter/http/routes"
	"mbg_outreach/internal/bootstrap"
	"mbg_outreach/internal/config"
	"mbg_outreach/internal/logging"

	"go.uber.org/zap"
)

// @title           MBG Outreach API
// @version         1.0
// @description     Lead discovery, message drafting, WhatsApp dispatch and reply handling for MBG school kitchens.

// @host      localhost:3001
// @BasePath  /api

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
	defer func() { _ = app.Close() }()

	if err := routes.Run(ctx, app); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
