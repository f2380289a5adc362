package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yaronsalon/salon-ai-assistant/internal/conversation"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// MessageHandler handles direct bot API requests.
type MessageHandler struct {
	svc    *conversation.Service
	logger *logging.Logger
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(svc *conversation.Service, logger *logging.Logger) *MessageHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &MessageHandler{svc: svc, logger: logger}
}

// MessageRequest is the POST /api/message payload.
type MessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// MessageResponse is the POST /api/message reply body.
type MessageResponse struct {
	Success    bool    `json:"success"`
	Response   string  `json:"response"`
	Emotion    string  `json:"emotion"`
	Intensity  float64 `json:"intensity"`
	NeedsHuman bool    `json:"needsHuman"`
	Timestamp  string  `json:"timestamp"`
	MessageID  string  `json:"messageId"`
}

// HandleMessage handles POST /api/message requests.
func (h *MessageHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode message request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
		return
	}

	if req.Phone == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing phone or message"})
		return
	}

	result := h.svc.HandleMessage(r.Context(), req.Phone, req.Message)

	writeJSON(w, http.StatusOK, MessageResponse{
		Success:    true,
		Response:   result.ResponseText,
		Emotion:    string(result.DominantEmotion),
		Intensity:  result.Intensity,
		NeedsHuman: result.NeedsHuman,
		Timestamp:  result.Timestamp.Format(time.RFC3339),
		MessageID:  uuid.NewString(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
