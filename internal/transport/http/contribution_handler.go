package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"heritage-explorer-service/internal/app"
	"heritage-explorer-service/internal/domain"
)

func (h *Handler) handleSubmitContribution(w http.ResponseWriter, r *http.Request) {
	var in app.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contribution, err := h.contributions.Submit(r.Context(), in)
	if err != nil {
		if domain.IsValidation(err) {
			writeErrorDetails(w, http.StatusBadRequest, "Missing required fields", err.Error())
			return
		}
		log.Printf("submit contribution: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create contribution")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"message":      "Contribution submitted successfully",
		"contribution": contribution,
	})
}

func (h *Handler) handleListContributions(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "all"
	}
	h.listContributions(w, r, status)
}

func (h *Handler) handlePendingContributions(w http.ResponseWriter, r *http.Request) {
	h.listContributions(w, r, domain.StatusPending)
}

func (h *Handler) listContributions(w http.ResponseWriter, r *http.Request, status string) {
	contributions, err := h.contributions.List(r.Context(), status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		log.Printf("list contributions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contributions")
		return
	}
	if contributions == nil {
		contributions = []domain.Contribution{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"contributions": contributions,
	})
}

func (h *Handler) handleContributionCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.contributions.Counts(r.Context())
	if err != nil {
		log.Printf("count contributions: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch counts",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "counts": counts})
}

type updateContributionRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateContribution(w http.ResponseWriter, r *http.Request) {
	var req updateContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contribution, err := h.contributions.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, domain.ErrContributionNotFound):
			writeError(w, http.StatusNotFound, "Contribution not found")
		default:
			log.Printf("update contribution: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update contribution")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Contribution status updated",
		"contribution": contribution,
	})
}
