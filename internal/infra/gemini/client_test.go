package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heritage-explorer-service/internal/domain"
)

func TestRespondSendsPersonaAndHistory(t *testing.T) {
	var captured generateRequest
	var gotPath, gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "Namaste, beta!"}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:     "test-key",
		Model:      "gemini-1.5-flash",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})

	persona := domain.Persona{ID: "dadi", SystemPrompt: "You are Dadi Maa."}
	history := []domain.ChatTurn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "namaste"},
	}
	reply, err := client.Respond(context.Background(), persona, "tell me a story", history)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Namaste, beta!" {
		t.Fatalf("unexpected reply %q", reply)
	}

	if !strings.HasSuffix(gotPath, "/models/gemini-1.5-flash:generateContent") {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected api key in query, got %q", gotKey)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != persona.SystemPrompt {
		t.Fatalf("expected system instruction, got %+v", captured.SystemInstruction)
	}
	if len(captured.Contents) != 3 {
		t.Fatalf("expected history plus new message, got %d contents", len(captured.Contents))
	}
	if captured.Contents[0].Role != "user" || captured.Contents[1].Role != "model" {
		t.Fatalf("expected relabeled roles, got %q and %q", captured.Contents[0].Role, captured.Contents[1].Role)
	}
	if captured.Contents[2].Parts[0].Text != "tell me a story" {
		t.Fatalf("expected new message last, got %+v", captured.Contents[2])
	}
}

func TestRespondErrorsOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL, HTTPClient: server.Client()})
	if _, err := client.Respond(context.Background(), domain.Persona{}, "hi", nil); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestRespondEmptyCandidatesIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL, HTTPClient: server.Client()})
	reply, err := client.Respond(context.Background(), domain.Persona{}, "hi", nil)
	if err != nil {
		t.Fatalf("expected empty candidates to be tolerated, got %v", err)
	}
	if reply != "" {
		t.Fatalf("expected empty reply, got %q", reply)
	}
}
