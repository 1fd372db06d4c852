package http

import (
	"encoding/json"
	"log"
	"net/http"

	"heritage-explorer-service/internal/app"
	"heritage-explorer-service/internal/domain"
)

// maxHistoryTurns caps how much prior conversation is forwarded upstream.
const maxHistoryTurns = 20

type chatRequest struct {
	Message             string            `json:"message"`
	Character           string            `json:"character"`
	ConversationHistory []domain.ChatTurn `json:"conversationHistory"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" || req.Character == "" {
		writeError(w, http.StatusBadRequest, "Missing message or character")
		return
	}

	history := req.ConversationHistory
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	reply, err := h.chat.Ask(r.Context(), req.Message, req.Character, history)
	if err != nil {
		log.Printf("chat responder failed: %v", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to generate response", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) handlePersonas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"personas": app.Personas()})
}
