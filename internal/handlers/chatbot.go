package handlers

//go:generate mockgen -source=chatbot.go -destination=mock_chatbot.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/freaksearch-chat/internal/models"
)

// ChatResponder produces the chatbot reply for a message.
type ChatResponder interface {
	Reply(ctx context.Context, message string, history []models.ChatMessage) string
}

// NewChatbotHandler returns an HTTP handler answering chat messages.
// @Summary Chat with the bot
// @Description Detects the intent of the message and returns its canned reply. chatHistory is accepted but not used.
// @Tags chat
// @Accept json
// @Produce json
// @Param chatRequest body models.ChatRequest true "Chat request"
// @Success 200 {object} models.ChatResponse "Bot reply"
// @Failure 422 {object} models.ErrorResponse "Invalid request body"
// @Router /chatbot [post]
func NewChatbotHandler(svc ChatResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ChatRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
			return
		}

		writeJSON(w, http.StatusOK, models.ChatResponse{
			Text: svc.Reply(r.Context(), req.Message, req.ChatHistory),
		})
	}
}
