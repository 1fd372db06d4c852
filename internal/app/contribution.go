package app

import (
	"context"
	"strings"

	"heritage-explorer-service/internal/domain"
)

// ContributionRepository abstracts the document store holding community
// submissions (Postgres in deployment, memory offline).
type ContributionRepository interface {
	Create(ctx context.Context, c domain.Contribution) (domain.Contribution, error)
	// List returns contributions newest-first; status "" or "all" means no filter.
	List(ctx context.Context, status string) ([]domain.Contribution, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Contribution, error)
	Counts(ctx context.Context) (domain.ContributionCounts, error)
}

// ContributionService validates community submissions and runs the
// moderation queue on top of the repository.
type ContributionService struct {
	repo ContributionRepository
}

func NewContributionService(repo ContributionRepository) *ContributionService {
	return &ContributionService{repo: repo}
}

// SubmitInput carries the community-form fields. All are required.
type SubmitInput struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Region          string `json:"region"`
	Category        string `json:"category"`
	ContributorName string `json:"contributorName"`
}

// Submit validates the form and persists a new pending contribution. The
// store assigns the id and timestamp.
func (s *ContributionService) Submit(ctx context.Context, in SubmitInput) (domain.Contribution, error) {
	fields := []struct {
		name, value string
	}{
		{"type", in.Type},
		{"title", in.Title},
		{"content", in.Content},
		{"region", in.Region},
		{"category", in.Category},
		{"contributorName", in.ContributorName},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.Contribution{}, &domain.ValidationError{Field: f.name}
		}
	}
	if !oneOf(in.Type, domain.ContributionTypes) {
		return domain.Contribution{}, &domain.ValidationError{Field: "type"}
	}
	if !oneOf(in.Category, domain.ContributionCategories) {
		return domain.Contribution{}, &domain.ValidationError{Field: "category"}
	}

	return s.repo.Create(ctx, domain.Contribution{
		Type:            in.Type,
		Title:           in.Title,
		Content:         in.Content,
		Region:          in.Region,
		Category:        in.Category,
		ContributorName: in.ContributorName,
		Status:          domain.StatusPending,
	})
}

// List returns contributions newest-first, optionally filtered to one status.
func (s *ContributionService) List(ctx context.Context, status string) ([]domain.Contribution, error) {
	if status != "" && status != "all" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

// UpdateStatus applies a moderation decision. The enum is checked; the
// transition itself is unrestricted (any status to any status).
func (s *ContributionService) UpdateStatus(ctx context.Context, id, status string) (domain.Contribution, error) {
	if !domain.ValidStatus(status) {
		return domain.Contribution{}, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Counts summarizes the queue by status for the moderation dashboard.
func (s *ContributionService) Counts(ctx context.Context) (domain.ContributionCounts, error) {
	return s.repo.Counts(ctx)
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
