package memory

import (
	"context"
	"errors"
	"sync"

	"heritage-explorer-service/internal/domain"
)

var errNoRecord = errors.New("no progress record")

// ProgressStore keeps progress records in a process-local map. Used in tests
// and when neither a data directory nor Redis is configured.
type ProgressStore struct {
	mu      sync.RWMutex
	records map[string]domain.UserProgress
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{records: make(map[string]domain.UserProgress)}
}

func (s *ProgressStore) Load(_ context.Context, userID string) (domain.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.records[userID]; ok {
		return p, nil
	}
	return domain.UserProgress{}, errNoRecord
}

func (s *ProgressStore) Save(_ context.Context, userID string, p domain.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = p
	return nil
}
