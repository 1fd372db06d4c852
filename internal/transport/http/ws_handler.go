package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"heritage-explorer-service/internal/app"
	"heritage-explorer-service/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type questionPayload struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	XP       int      `json:"xp"`
}

type completedPayload struct {
	QuizID    string `json:"quizId"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	XPAwarded int    `json:"xpAwarded"`
	TotalXP   int    `json:"totalXp"`
	Level     int    `json:"level"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeQuizWS upgrades the request and plays one quiz run over the socket.
// quizId selects the standalone heritage quiz (the default) or a story's
// attached quiz; each connection is one player's session.
func (h *Handler) ServeQuizWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}
	quizID := r.URL.Query().Get("quizId")
	if quizID == "" {
		quizID = app.HeritageQuizID
	}

	var (
		run      *app.QuizRun
		storyRun bool
	)
	if quizID == app.HeritageQuizID {
		run = h.quizzes.StartHeritageQuiz()
	} else {
		var err error
		run, err = h.quizzes.StartStoryQuiz(r.Context(), quizID)
		if err != nil {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		storyRun = true
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	sendQuestion := func() {
		q, ok := run.Current()
		if !ok {
			return
		}
		send <- outboundMessage[any]{Type: "question", Payload: questionPayload{
			Index:    run.Index(),
			Total:    run.Total(),
			Question: q.Question,
			Options:  q.Options,
			XP:       q.XP,
		}}
	}

	settle := func() {
		var (
			award    int
			progress domain.UserProgress
		)
		if storyRun {
			award, progress = h.stories.CompleteStoryQuiz(r.Context(), userID, run)
		} else {
			award, progress = h.quizzes.Complete(r.Context(), userID, run)
		}
		send <- outboundMessage[any]{Type: "completed", Payload: completedPayload{
			QuizID:    run.QuizID(),
			Score:     run.Score(),
			Total:     run.Total(),
			XPAwarded: award,
			TotalXP:   progress.XP,
			Level:     progress.Level,
		}}
	}

	sendQuestion()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			outcome, err := run.Answer(payload.Option)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "answerResult", Payload: outcome}
			if outcome.Done {
				settle()
			} else {
				sendQuestion()
			}
		case "restart":
			run.Restart()
			sendQuestion()
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(send)
	<-writerDone
}
