package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/config"
	"catalog-service/internal/httpserver"
	"catalog-service/pkg/log"
	"catalog-service/pkg/tracing"
)

// @title       Catalog Service API
// @description CRUD service for catalog items.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Catalog Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
		JaegerEndpoint: cfg.Tracing.JaegerEndpoint,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}

	// 4. Infrastructure
	itemRepo, storeClosers, err := openItemRepository(ctx, cfg, logger)
	defer closeAll(context.Background(), storeClosers)
	if err != nil {
		logger.Error(ctx, "Failed to open item store: ", err)
		return
	}

	publisher, eventClosers, err := openEventPublisher(ctx, cfg, logger)
	defer closeAll(context.Background(), eventClosers)
	if err != nil {
		logger.Error(ctx, "Failed to connect item events: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		ServiceName:     cfg.Tracing.ServiceName,
		TracingEnabled:  cfg.Tracing.Enabled,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		ItemRepository:  itemRepo,
		EventPublisher:  publisher,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warnf(flushCtx, "Failed to flush traces: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
