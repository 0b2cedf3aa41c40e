package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finpal-guardian/config"
	_ "finpal-guardian/docs" // Swagger docs
	"finpal-guardian/internal/app"
	"finpal-guardian/internal/httpserver"
	"finpal-guardian/internal/middleware"
	"finpal-guardian/pkg/log"
)

// @title       FinPal Guardian API
// @description Routes user messages to document risk, policy QA and scam triage pipelines.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FinPal Guardian...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Router, pipelines and stores
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build application: %v", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.RegisterWebhook(ctx); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		Metrics:         a.Metrics,
		GuardianUseCase: a.Guardian,
		DocumentUseCase: a.Document,
		ThreatUseCase:   a.Threat,
		TelegramHandler: a.TelegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
