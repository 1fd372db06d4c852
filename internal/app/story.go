package app

import (
	"context"

	"heritage-explorer-service/internal/catalog"
	"heritage-explorer-service/internal/domain"
)

// StoryCompletionXP is the fixed award for reaching a story's terminal
// chapter, granted once per story per user.
const StoryCompletionXP = 20

// StoryRun walks one story's chapter graph. State is just the current
// chapter; a chapter with no choices ends the narrative, after which the
// caller moves on to the attached quiz. Not safe for concurrent use.
type StoryRun struct {
	story   domain.Story
	current domain.StoryChapter
}

// StartStory positions a run at the story's start chapter.
func StartStory(story domain.Story) (*StoryRun, error) {
	start, ok := story.Chapter(domain.StartChapterID)
	if !ok {
		return nil, domain.ErrChapterNotFound
	}
	return &StoryRun{story: story, current: start}, nil
}

func (r *StoryRun) Story() domain.Story          { return r.story }
func (r *StoryRun) Chapter() domain.StoryChapter { return r.current }

// AtEnd reports whether the current chapter is terminal.
func (r *StoryRun) AtEnd() bool {
	return len(r.current.Choices) == 0
}

// Choose follows the indexed choice to its next chapter. Callers present
// only the choices the current chapter exposes; anything else is rejected.
func (r *StoryRun) Choose(choice int) error {
	if choice < 0 || choice >= len(r.current.Choices) {
		return domain.ErrInvalidChoice
	}
	next, ok := r.story.Chapter(r.current.Choices[choice].NextChapter)
	if !ok {
		return domain.ErrChapterNotFound
	}
	r.current = next
	return nil
}

// Quiz returns the linear quiz run attached to the story's ending.
func (r *StoryRun) Quiz() *QuizRun {
	return NewQuizRun(r.story.ID, r.story.Quiz, StoryQuizBonus)
}

// StoryService ties story runs to the catalog and user progress.
type StoryService struct {
	catalog  *catalog.Catalog
	progress *ProgressService
}

func NewStoryService(cat *catalog.Catalog, progress *ProgressService) *StoryService {
	return &StoryService{catalog: cat, progress: progress}
}

// Start begins a run for the given story id.
func (s *StoryService) Start(ctx context.Context, storyID string) (*StoryRun, error) {
	story, err := s.catalog.Story(ctx, storyID)
	if err != nil {
		return nil, err
	}
	return StartStory(story)
}

// CompleteStory marks the story finished and grants the completion XP on the
// first time only. The quiz award is settled separately and repeats.
func (s *StoryService) CompleteStory(ctx context.Context, userID, storyID string) (domain.UserProgress, bool) {
	progress, first := s.progress.CompleteStory(ctx, userID, storyID)
	if first {
		progress = s.progress.AddXP(ctx, userID, StoryCompletionXP)
	}
	return progress, first
}

// CompleteStoryQuiz settles the in-story quiz: score*10+20 XP, granted on
// every completion including retakes (matches the shipped behavior).
func (s *StoryService) CompleteStoryQuiz(ctx context.Context, userID string, run *QuizRun) (int, domain.UserProgress) {
	if !run.Done() {
		return 0, s.progress.Get(ctx, userID)
	}
	award := run.XPAward()
	s.progress.RecordQuizScore(ctx, userID, domain.QuizScore{
		QuizID: run.QuizID(),
		Score:  run.Score(),
		Total:  run.Total(),
	})
	return award, s.progress.AddXP(ctx, userID, award)
}
