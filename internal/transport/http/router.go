package http

import (
	"net/http"

	"heritage-explorer-service/internal/app"
	"heritage-explorer-service/internal/catalog"
)

// Handler bundles the services behind the REST and WebSocket surface.
type Handler struct {
	catalog       *catalog.Catalog
	chat          *app.ChatService
	contributions *app.ContributionService
	progress      *app.ProgressService
	stories       *app.StoryService
	quizzes       *app.QuizService
}

func NewHandler(
	cat *catalog.Catalog,
	chat *app.ChatService,
	contributions *app.ContributionService,
	progress *app.ProgressService,
	stories *app.StoryService,
	quizzes *app.QuizService,
) *Handler {
	return &Handler{
		catalog:       cat,
		chat:          chat,
		contributions: contributions,
		progress:      progress,
		stories:       stories,
		quizzes:       quizzes,
	}
}

// Router wires the HTTP surface onto a ServeMux.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.handleHealth)

	mux.HandleFunc("POST /api/chat", h.handleChat)
	mux.HandleFunc("GET /api/personas", h.handlePersonas)

	mux.HandleFunc("POST /api/contributions", h.handleSubmitContribution)
	mux.HandleFunc("GET /api/contributions", h.handleListContributions)
	mux.HandleFunc("GET /api/contributions/pending", h.handlePendingContributions)
	mux.HandleFunc("GET /api/contributions/debug/counts", h.handleContributionCounts)
	mux.HandleFunc("PUT /api/contributions/{id}", h.handleUpdateContribution)

	mux.HandleFunc("GET /api/sites", h.handleSites)
	mux.HandleFunc("GET /api/biodiversity", h.handleBiodiversity)
	mux.HandleFunc("GET /api/stories", h.handleStories)
	mux.HandleFunc("GET /api/stories/{id}", h.handleStory)
	mux.HandleFunc("GET /api/quiz/questions", h.handleQuizQuestions)
	mux.HandleFunc("GET /api/badges", h.handleBadges)

	mux.HandleFunc("GET /api/progress/{userId}", h.handleGetProgress)
	mux.HandleFunc("DELETE /api/progress/{userId}", h.handleResetProgress)
	mux.HandleFunc("POST /api/progress/{userId}/xp", h.handleAddXP)
	mux.HandleFunc("POST /api/progress/{userId}/sites", h.handleCompleteSite)
	mux.HandleFunc("POST /api/progress/{userId}/stories", h.handleCompleteStory)
	mux.HandleFunc("POST /api/progress/{userId}/badges", h.handleAddBadge)

	mux.HandleFunc("GET /ws/quiz", h.ServeQuizWS)

	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Heritage Explorer API is running",
	})
}
