package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yaronsalon/salon-ai-assistant/internal/http/handlers"
	httpmiddleware "github.com/yaronsalon/salon-ai-assistant/internal/http/middleware"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	MessageHandler     *handlers.MessageHandler
	WebhookHandler     *handlers.WebhookHandler
	StatsHandler       *handlers.StatsHandler
	DashboardHandler   *handlers.DashboardHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	if cfg.DashboardHandler != nil {
		r.Get("/", cfg.DashboardHandler.IndexPage)
	}

	r.Get("/health", cfg.StatsHandler.HealthCheck)
	r.Get("/api/health", cfg.StatsHandler.HealthCheck)

	r.Route("/api", func(api chi.Router) {
		api.Post("/message", cfg.MessageHandler.HandleMessage)
		api.Get("/stats", cfg.StatsHandler.GetStats)
		api.Get("/webhook", cfg.WebhookHandler.Verify)
		api.Post("/webhook", cfg.WebhookHandler.Receive)
	})

	// Legacy webhook path kept for already-configured platform apps.
	r.Get("/webhook", cfg.WebhookHandler.Verify)
	r.Post("/webhook", cfg.WebhookHandler.Receive)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
