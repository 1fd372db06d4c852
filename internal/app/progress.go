package app

import (
	"context"
	"log"
	"sync"

	"heritage-explorer-service/internal/domain"
)

// ProgressStore abstracts where a user's progress record is persisted
// (file, Redis, plain memory).
type ProgressStore interface {
	Load(ctx context.Context, userID string) (domain.UserProgress, error)
	Save(ctx context.Context, userID string, progress domain.UserProgress) error
}

// ProgressService owns the in-memory view of every user's progress and keeps
// the backing store in sync. The in-memory state is authoritative: a failed
// store write is logged and does not fail the gameplay call, and a failed or
// missing load falls back to the zero-value record.
type ProgressService struct {
	store ProgressStore

	mu    sync.Mutex
	users map[string]domain.UserProgress
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{
		store: store,
		users: make(map[string]domain.UserProgress),
	}
}

// Get returns the current progress for a user, loading it on first access.
func (s *ProgressService) Get(ctx context.Context, userID string) domain.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, userID)
}

// AddXP adds the amount unconditionally and recomputes the level.
func (s *ProgressService) AddXP(ctx context.Context, userID string, amount int) domain.UserProgress {
	return s.mutate(ctx, userID, func(p *domain.UserProgress) {
		p.XP += amount
		p.Level = domain.LevelForXP(p.XP)
	})
}

// CompleteSite marks a heritage site visited. Idempotent.
func (s *ProgressService) CompleteSite(ctx context.Context, userID, siteID string) (domain.UserProgress, bool) {
	changed := false
	p := s.mutate(ctx, userID, func(p *domain.UserProgress) {
		if !contains(p.CompletedSites, siteID) {
			p.CompletedSites = append(p.CompletedSites, siteID)
			changed = true
		}
	})
	return p, changed
}

// CompleteStory marks a story finished. Idempotent.
func (s *ProgressService) CompleteStory(ctx context.Context, userID, storyID string) (domain.UserProgress, bool) {
	changed := false
	p := s.mutate(ctx, userID, func(p *domain.UserProgress) {
		if !contains(p.CompletedStories, storyID) {
			p.CompletedStories = append(p.CompletedStories, storyID)
			changed = true
		}
	})
	return p, changed
}

// AddBadge grants a badge. Idempotent.
func (s *ProgressService) AddBadge(ctx context.Context, userID, badgeID string) (domain.UserProgress, bool) {
	changed := false
	p := s.mutate(ctx, userID, func(p *domain.UserProgress) {
		if !contains(p.Badges, badgeID) {
			p.Badges = append(p.Badges, badgeID)
			changed = true
		}
	})
	return p, changed
}

// RecordQuizScore appends a finished quiz run to the score history.
func (s *ProgressService) RecordQuizScore(ctx context.Context, userID string, score domain.QuizScore) domain.UserProgress {
	return s.mutate(ctx, userID, func(p *domain.UserProgress) {
		p.QuizScores = append(p.QuizScores, score)
	})
}

// Reset wipes a user back to the zero-value record.
func (s *ProgressService) Reset(ctx context.Context, userID string) domain.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.DefaultProgress()
	s.users[userID] = p
	s.persistLocked(ctx, userID, p)
	return p
}

func (s *ProgressService) mutate(ctx context.Context, userID string, fn func(*domain.UserProgress)) domain.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.loadLocked(ctx, userID)
	fn(&p)
	s.users[userID] = p
	s.persistLocked(ctx, userID, p)
	return p
}

func (s *ProgressService) loadLocked(ctx context.Context, userID string) domain.UserProgress {
	if p, ok := s.users[userID]; ok {
		return p
	}
	p, err := s.store.Load(ctx, userID)
	if err != nil {
		p = domain.DefaultProgress()
	}
	// Re-derive in case a stored record predates a formula change.
	p.Level = domain.LevelForXP(p.XP)
	s.users[userID] = p
	return p
}

func (s *ProgressService) persistLocked(ctx context.Context, userID string, p domain.UserProgress) {
	if err := s.store.Save(ctx, userID, p); err != nil {
		log.Printf("progress save failed for %s: %v", userID, err)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
