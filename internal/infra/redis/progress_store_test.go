package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"heritage-explorer-service/internal/domain"
)

func TestProgressStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewProgressStore(client)
	ctx := context.Background()

	if _, err := store.Load(ctx, "u1"); err == nil {
		t.Fatalf("expected error for missing record")
	}

	want := domain.UserProgress{XP: 130, Level: 2, CompletedStories: []string{"spice-route"}}
	if err := store.Save(ctx, "u1", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("heritage:progress:u1") {
		t.Fatalf("expected progress key in redis")
	}

	got, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != want.XP || len(got.CompletedStories) != 1 {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	// No expiry on progress keys.
	if mr.TTL("heritage:progress:u1") != 0 {
		t.Fatalf("expected no TTL, got %v", mr.TTL("heritage:progress:u1"))
	}
}
