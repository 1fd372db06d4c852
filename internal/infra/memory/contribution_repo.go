package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"heritage-explorer-service/internal/domain"
)

// ContributionRepository is the offline fallback for the moderation queue.
// Entries live only for the process lifetime and never reconcile with a
// backing store; the feature is best-effort when Postgres is absent.
type ContributionRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[string]domain.Contribution
	now    func() time.Time
}

func NewContributionRepository() *ContributionRepository {
	return &ContributionRepository{
		nextID: 1,
		items:  make(map[string]domain.Contribution),
		now:    time.Now,
	}
}

// NewContributionRepositoryWithClock is test-only for deterministic timestamps.
func NewContributionRepositoryWithClock(now func() time.Time) *ContributionRepository {
	r := NewContributionRepository()
	r.now = now
	return r
}

func (r *ContributionRepository) Create(_ context.Context, c domain.Contribution) (domain.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	c.CreatedAt = r.now()
	r.items[c.ID] = c
	return c, nil
}

func (r *ContributionRepository) List(_ context.Context, status string) ([]domain.Contribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Contribution, 0, len(r.items))
	for _, c := range r.items {
		if status != "" && status != "all" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		// Ids are numeric strings ("9" vs "10"); compare their values,
		// not their bytes.
		return numericID(out[i].ID) > numericID(out[j].ID)
	})
	return out, nil
}

func numericID(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}

func (r *ContributionRepository) UpdateStatus(_ context.Context, id, status string) (domain.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return domain.Contribution{}, domain.ErrContributionNotFound
	}
	c.Status = status
	r.items[id] = c
	return c, nil
}

func (r *ContributionRepository) Counts(_ context.Context) (domain.ContributionCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := domain.ContributionCounts{}
	for _, c := range r.items {
		counts.Total++
		switch c.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusApproved:
			counts.Approved++
		case domain.StatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}
