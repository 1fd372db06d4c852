package app

import (
	"context"

	"heritage-explorer-service/internal/domain"
)

// ApologyReply stands in when the provider answers but produces no usable
// text. Hard provider failures surface as errors instead.
const ApologyReply = "I apologize, I couldn't generate a response at this moment."

// Responder produces a reply for one user message. LiveRelay talks to the
// generative provider; StaticResponder is the canned offline fallback.
type Responder interface {
	Respond(ctx context.Context, persona domain.Persona, message string, history []domain.ChatTurn) (string, error)
}

// ChatService resolves the persona and delegates to the configured responder.
// One provider call per request, no retry, no streaming.
type ChatService struct {
	responder Responder
}

func NewChatService(responder Responder) *ChatService {
	return &ChatService{responder: responder}
}

// Ask answers a single chat turn. Unknown character ids fall back to the
// default persona. An empty reply becomes the fixed apology string; a
// responder error is returned for the transport to report.
func (s *ChatService) Ask(ctx context.Context, message, characterID string, history []domain.ChatTurn) (domain.ChatReply, error) {
	persona := ResolvePersona(characterID)
	content, err := s.responder.Respond(ctx, persona, message, history)
	if err != nil {
		return domain.ChatReply{}, err
	}
	if content == "" {
		content = ApologyReply
	}
	return domain.ChatReply{Content: content, Character: characterID}, nil
}
