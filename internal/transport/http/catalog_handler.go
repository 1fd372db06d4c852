package http

import (
	"errors"
	"log"
	"net/http"

	"heritage-explorer-service/internal/domain"
)

func (h *Handler) handleSites(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sites": h.catalog.Sites()})
}

func (h *Handler) handleBiodiversity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records := h.catalog.BiodiversityRecords(q.Get("category"), q.Get("search"))
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (h *Handler) handleStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.catalog.Stories(r.Context())
	if err != nil {
		log.Printf("list stories: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stories")
		return
	}
	if stories == nil {
		stories = []domain.Story{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

func (h *Handler) handleStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.catalog.Story(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "Story not found")
			return
		}
		log.Printf("load story: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch story")
		return
	}
	writeJSON(w, http.StatusOK, story)
}

func (h *Handler) handleQuizQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"questions": h.catalog.QuizQuestions()})
}

func (h *Handler) handleBadges(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"badges": h.catalog.Badges()})
}
