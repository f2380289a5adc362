package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yaronsalon/salon-ai-assistant/internal/conversation"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// WebhookHandler adapts the messaging-platform webhook to the pipeline.
type WebhookHandler struct {
	svc         *conversation.Service
	verifyToken string
	logger      *logging.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(svc *conversation.Service, verifyToken string, logger *logging.Logger) *WebhookHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WebhookHandler{svc: svc, verifyToken: verifyToken, logger: logger}
}

// webhookPayload is the subset of the WhatsApp webhook body the bot
// consumes.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Verify handles the GET verification handshake (hub.challenge echo).
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.logger.Info("webhook verified")
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	h.logger.Warn("webhook verification failed", "mode", mode)
	http.Error(w, "Forbidden", http.StatusForbidden)
}

// Receive handles inbound webhook deliveries. The platform requires a
// 200 acknowledgment even for payloads the bot cannot parse.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	ack := map[string]any{
		"received":  true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("webhook payload not parseable", "error", err)
		ack["error"] = "Invalid format"
		writeJSON(w, http.StatusOK, ack)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.From == "" || msg.Text.Body == "" {
					continue
				}
				result := h.svc.HandleMessage(r.Context(), msg.From, msg.Text.Body)
				h.logger.Info("webhook message processed",
					"phone", msg.From,
					"emotion", result.DominantEmotion,
					"needs_human", result.NeedsHuman,
				)
			}
		}
	}

	writeJSON(w, http.StatusOK, ack)
}
