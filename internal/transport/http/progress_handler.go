package http

import (
	"encoding/json"
	"net/http"
)

type addXPRequest struct {
	Amount int `json:"amount"`
}

type idRequest struct {
	ID string `json:"id"`
}

func (h *Handler) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	progress := h.progress.Get(r.Context(), r.PathValue("userId"))
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	progress := h.progress.Reset(r.Context(), r.PathValue("userId"))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Progress reset",
		"progress": progress,
	})
}

func (h *Handler) handleAddXP(w http.ResponseWriter, r *http.Request) {
	var req addXPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	progress := h.progress.AddXP(r.Context(), r.PathValue("userId"), req.Amount)
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleCompleteSite(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Missing site id")
		return
	}
	progress, first := h.progress.CompleteSite(r.Context(), r.PathValue("userId"), req.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"progress":       progress,
		"alreadyVisited": !first,
	})
}

func (h *Handler) handleCompleteStory(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Missing story id")
		return
	}
	progress, first := h.stories.CompleteStory(r.Context(), r.PathValue("userId"), req.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"progress":         progress,
		"alreadyCompleted": !first,
	})
}

func (h *Handler) handleAddBadge(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Missing badge id")
		return
	}
	progress, first := h.progress.AddBadge(r.Context(), r.PathValue("userId"), req.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"progress":     progress,
		"alreadyOwned": !first,
	})
}
