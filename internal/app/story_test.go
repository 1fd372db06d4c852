package app_test

import (
	"context"
	"testing"

	"heritage-explorer-service/internal/app"
	"heritage-explorer-service/internal/catalog"
	"heritage-explorer-service/internal/domain"
	"heritage-explorer-service/internal/infra/memory"
)

func newStoryService() (*app.StoryService, *app.ProgressService) {
	cat := catalog.New(catalog.NewStaticStoryLoader())
	progress := app.NewProgressService(memory.NewProgressStore())
	return app.NewStoryService(cat, progress), progress
}

func TestStoryWalkToEnd(t *testing.T) {
	ctx := context.Background()
	service, _ := newStoryService()

	run, err := service.Start(ctx, "ashoka-transformation")
	if err != nil {
		t.Fatalf("start story: %v", err)
	}
	if run.Chapter().ID != domain.StartChapterID {
		t.Fatalf("expected run to start at %s, got %s", domain.StartChapterID, run.Chapter().ID)
	}
	if run.AtEnd() {
		t.Fatalf("start chapter should not be terminal")
	}

	// First choice at every branch reaches the ending in two steps.
	if err := run.Choose(0); err != nil {
		t.Fatalf("first choice: %v", err)
	}
	if err := run.Choose(0); err != nil {
		t.Fatalf("second choice: %v", err)
	}
	if !run.AtEnd() {
		t.Fatalf("expected terminal chapter, got %s", run.Chapter().ID)
	}

	quiz := run.Quiz()
	if quiz.Total() != 3 {
		t.Fatalf("expected 3 quiz questions, got %d", quiz.Total())
	}
}

func TestChooseRejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	service, _ := newStoryService()

	run, err := service.Start(ctx, "tribal-wisdom")
	if err != nil {
		t.Fatalf("start story: %v", err)
	}
	if err := run.Choose(5); err != domain.ErrInvalidChoice {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	if err := run.Choose(-1); err != domain.ErrInvalidChoice {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
}

func TestStartUnknownStory(t *testing.T) {
	ctx := context.Background()
	service, _ := newStoryService()

	if _, err := service.Start(ctx, "no-such-story"); err != domain.ErrStoryNotFound {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}

func TestCompleteStoryAwardsOnce(t *testing.T) {
	ctx := context.Background()
	service, _ := newStoryService()

	p, first := service.CompleteStory(ctx, "u1", "spice-route")
	if !first || p.XP != app.StoryCompletionXP {
		t.Fatalf("expected first completion to grant %d XP, got first=%v xp=%d", app.StoryCompletionXP, first, p.XP)
	}
	p, first = service.CompleteStory(ctx, "u1", "spice-route")
	if first || p.XP != app.StoryCompletionXP {
		t.Fatalf("expected repeat completion to grant nothing, got first=%v xp=%d", first, p.XP)
	}
}

func TestCompleteStoryQuizRepeats(t *testing.T) {
	ctx := context.Background()
	service, _ := newStoryService()

	playPerfect := func() *app.QuizRun {
		run, err := service.Start(ctx, "tribal-wisdom")
		if err != nil {
			t.Fatalf("start story: %v", err)
		}
		quiz := run.Quiz()
		for {
			q, ok := quiz.Current()
			if !ok {
				break
			}
			if _, err := quiz.Answer(q.Answer); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		return quiz
	}

	// 2 correct answers: 2*10 + 20 story bonus.
	award, p := service.CompleteStoryQuiz(ctx, "u1", playPerfect())
	if award != 40 || p.XP != 40 {
		t.Fatalf("expected 40 XP, got award=%d total=%d", award, p.XP)
	}

	// Retakes settle again in full.
	award, p = service.CompleteStoryQuiz(ctx, "u1", playPerfect())
	if award != 40 || p.XP != 80 {
		t.Fatalf("expected another 40 XP, got award=%d total=%d", award, p.XP)
	}
	if len(p.QuizScores) != 2 {
		t.Fatalf("expected 2 score records, got %d", len(p.QuizScores))
	}
}
