package memory

import (
	"context"
	"testing"
	"time"

	"heritage-explorer-service/internal/domain"
)

func TestContributionRepositoryAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewContributionRepository()

	a, err := repo.Create(ctx, domain.Contribution{Title: "first", Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := repo.Create(ctx, domain.Contribution{Title: "second", Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != "1" || b.ID != "2" {
		t.Fatalf("expected sequential ids, got %q and %q", a.ID, b.ID)
	}
}

func TestContributionRepositoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	repo := NewContributionRepositoryWithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})

	for _, title := range []string{"oldest", "middle", "newest"} {
		if _, err := repo.Create(ctx, domain.Contribution{Title: title, Status: domain.StatusPending}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].Title != "newest" || list[2].Title != "oldest" {
		t.Fatalf("expected newest-first order, got %+v", list)
	}
}

func TestContributionRepositoryStatusFilterAndCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewContributionRepository()

	pending, _ := repo.Create(ctx, domain.Contribution{Title: "a", Status: domain.StatusPending})
	if _, err := repo.Create(ctx, domain.Contribution{Title: "b", Status: domain.StatusPending}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, pending.ID, domain.StatusRejected); err != nil {
		t.Fatalf("update: %v", err)
	}

	rejected, err := repo.List(ctx, domain.StatusRejected)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rejected) != 1 || rejected[0].ID != pending.ID {
		t.Fatalf("expected one rejected entry, got %+v", rejected)
	}

	all, err := repo.List(ctx, "all")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}

	counts, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	want := domain.ContributionCounts{Total: 2, Pending: 1, Rejected: 1}
	if counts != want {
		t.Fatalf("expected %+v, got %+v", want, counts)
	}
}

func TestContributionRepositoryTiebreakIsNumeric(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	repo := NewContributionRepositoryWithClock(func() time.Time { return fixed })

	// Push past single-digit ids so "10" has to outrank "9".
	for i := 0; i < 11; i++ {
		if _, err := repo.Create(ctx, domain.Contribution{Title: "entry", Status: domain.StatusPending}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].ID != "11" || list[1].ID != "10" || list[2].ID != "9" {
		t.Fatalf("expected ids 11, 10, 9 leading, got %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestContributionRepositoryUpdateTouchesOnlyStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewContributionRepository()

	created, err := repo.Create(ctx, domain.Contribution{
		Type:            "story",
		Title:           "The Talking Banyan",
		Content:         "A folk tale from my grandmother's village.",
		Region:          "West Bengal",
		Category:        "culture",
		ContributorName: "Riya",
		Status:          domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.StatusApproved)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.StatusApproved {
		t.Fatalf("expected approved status, got %q", updated.Status)
	}
	want := created
	want.Status = domain.StatusApproved
	if updated != want {
		t.Fatalf("expected only status to change:\n got %+v\nwant %+v", updated, want)
	}
}

func TestContributionRepositoryUpdateMissing(t *testing.T) {
	repo := NewContributionRepository()
	if _, err := repo.UpdateStatus(context.Background(), "42", domain.StatusApproved); err != domain.ErrContributionNotFound {
		t.Fatalf("expected ErrContributionNotFound, got %v", err)
	}
}
