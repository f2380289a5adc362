package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/yaronsalon/salon-ai-assistant/internal/conversation"
	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// StatsHandler serves the analytics snapshot and the health check.
type StatsHandler struct {
	svc       *conversation.Service
	logger    *logging.Logger
	env       string
	startedAt time.Time
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(svc *conversation.Service, env string, logger *logging.Logger) *StatsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsHandler{
		svc:       svc,
		logger:    logger,
		env:       env,
		startedAt: time.Now(),
	}
}

// StatsResponse is the GET /api/stats reply body.
type StatsResponse struct {
	TotalMessages  int                   `json:"totalMessages"`
	TotalCustomers int                   `json:"totalCustomers"`
	EmotionStats   map[emotion.Label]int `json:"emotionStats"`
	LastMessage    *conversation.Entry   `json:"lastMessage,omitempty"`
	RecentMessages []conversation.Entry  `json:"recentMessages"`
	Server         ServerStats           `json:"server"`
}

// ServerStats is the operational block of the stats payload.
type ServerStats struct {
	UptimeSeconds   int    `json:"uptime"`
	UptimeFormatted string `json:"uptimeFormatted"`
	Environment     string `json:"environment"`
	Timestamp       string `json:"timestamp"`
}

// GetStats handles GET /api/stats requests.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to build analytics snapshot", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to get stats"})
		return
	}

	uptime := time.Since(h.startedAt)
	writeJSON(w, http.StatusOK, StatsResponse{
		TotalMessages:  snap.TotalMessages,
		TotalCustomers: h.svc.CustomerCount(),
		EmotionStats:   snap.EmotionStats,
		LastMessage:    snap.LastMessage,
		RecentMessages: snap.Recent,
		Server: ServerStats{
			UptimeSeconds:   int(uptime.Seconds()),
			UptimeFormatted: formatUptime(uptime),
			Environment:     h.env,
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// HealthCheck handles GET /health requests.
func (h *StatsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.svc.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    int(time.Since(h.startedAt).Seconds()),
		"bot": map[string]any{
			"customers": h.svc.CustomerCount(),
			"messages":  snap.TotalMessages,
			"status":    "operational",
		},
	})
}

func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
