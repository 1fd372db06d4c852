// Package file persists progress records as one JSON document per user under
// a data directory, the service-side stand-in for the client's local storage.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"heritage-explorer-service/internal/domain"
)

type ProgressStore struct {
	dir string
}

func NewProgressStore(dir string) (*ProgressStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ProgressStore{dir: dir}, nil
}

func (s *ProgressStore) Load(_ context.Context, userID string) (domain.UserProgress, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		return domain.UserProgress{}, err
	}
	var p domain.UserProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.UserProgress{}, err
	}
	return p, nil
}

func (s *ProgressStore) Save(_ context.Context, userID string, p domain.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(userID), data, 0o644)
}

func (s *ProgressStore) path(userID string) string {
	// Flatten path separators so a user id can't escape the data dir.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(userID)
	return filepath.Join(s.dir, safe+".json")
}
