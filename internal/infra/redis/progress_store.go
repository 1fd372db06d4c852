package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"heritage-explorer-service/internal/domain"
)

// ProgressStore persists progress records as JSON values in Redis, one key
// per user, with no expiry: progress lives until an explicit reset.
type ProgressStore struct {
	client *redis.Client
}

func NewProgressStore(client *redis.Client) *ProgressStore {
	return &ProgressStore{client: client}
}

func (s *ProgressStore) Load(ctx context.Context, userID string) (domain.UserProgress, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		return domain.UserProgress{}, fmt.Errorf("load progress: %w", err)
	}
	var p domain.UserProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.UserProgress{}, fmt.Errorf("unmarshal progress: %w", err)
	}
	return p, nil
}

func (s *ProgressStore) Save(ctx context.Context, userID string, p domain.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *ProgressStore) key(userID string) string {
	return "heritage:progress:" + userID
}
