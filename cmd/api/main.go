package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"syncnotes/config"
	_ "syncnotes/docs" // Swagger docs
	"syncnotes/internal/bootstrap"
	"syncnotes/internal/httpserver"
	"syncnotes/internal/metrics"
	"syncnotes/pkg/log"
)

// @title       syncnotes API
// @description Turns meeting transcripts into a summary, decisions and dated action items.
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

	logger.Info(ctx, "Starting syncnotes API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction pipeline
	extraction, err := bootstrap.NewExtraction(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize extraction pipeline: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "LLM providers (priority order): %v", extraction.ProviderNames())

	// 4. Calendar export (optional)
	scheduleUC, err := bootstrap.NewSchedule(ctx, cfg, logger)
	if err != nil {
		logger.Warnf(ctx, "Calendar export not available (optional): %v", err)
		scheduleUC = nil
	}

	// 5. HTTP Server
	shutdownTimeout, err := time.ParseDuration(cfg.HTTPServer.ShutdownTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid shutdown_timeout %q, using %s", cfg.HTTPServer.ShutdownTimeout, httpserver.DefaultShutdownTimeout)
		shutdownTimeout = httpserver.DefaultShutdownTimeout
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ShutdownTimeout:   shutdownTimeout,
		APIKey:            cfg.HTTPServer.APIKey,
		RateLimitPerMin:   cfg.HTTPServer.RateLimitPerMin,
		TrustedProxies:    cfg.HTTPServer.TrustedProxies,
		Metrics:           metrics.New(),
		TranscriptUseCase: extraction.UseCase,
		ScheduleUseCase:   scheduleUC,
		Providers:         extraction.ProviderNames(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
