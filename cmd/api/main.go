package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yaronsalon/salon-ai-assistant/internal/api/router"
	"github.com/yaronsalon/salon-ai-assistant/internal/app/bootstrap"
	appconfig "github.com/yaronsalon/salon-ai-assistant/internal/config"
	"github.com/yaronsalon/salon-ai-assistant/internal/conversation"
	"github.com/yaronsalon/salon-ai-assistant/internal/directory"
	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
	"github.com/yaronsalon/salon-ai-assistant/internal/http/handlers"
	"github.com/yaronsalon/salon-ai-assistant/internal/intent"
	"github.com/yaronsalon/salon-ai-assistant/internal/observability/metrics"
	"github.com/yaronsalon/salon-ai-assistant/internal/respond"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting salon-ai-assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Customer roster, loaded once and read-only afterwards.
	dir := directory.LoadFile(cfg.CustomersFile, logger)

	// Conversation log: Redis when configured, in-memory otherwise.
	redisClient := bootstrap.BuildRedisClient(context.Background(), cfg, logger, true)
	recorder := bootstrap.BuildRecorder(redisClient, logger)

	registry := prometheus.NewRegistry()
	botMetrics := metrics.NewBotMetrics(registry)

	svc := conversation.NewService(
		emotion.NewDefaultClassifier(logger),
		intent.NewDefaultClassifier(),
		respond.NewDefaultComposer(logger),
		dir,
		recorder,
		botMetrics,
		logger,
	)

	routerCfg := &router.Config{
		Logger:             logger,
		MessageHandler:     handlers.NewMessageHandler(svc, logger),
		WebhookHandler:     handlers.NewWebhookHandler(svc, cfg.WebhookVerifyToken, logger),
		StatsHandler:       handlers.NewStatsHandler(svc, cfg.Env, logger),
		DashboardHandler:   handlers.NewDashboardHandler(cfg.PublicBaseURL, cfg.WebhookVerifyToken, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
