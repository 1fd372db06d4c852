package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"heritage-explorer-service/internal/domain"
)

type countingLoader struct {
	stories map[string]domain.Story
	loads   int
}

func (l *countingLoader) Story(_ context.Context, storyID string) (domain.Story, error) {
	l.loads++
	if s, ok := l.stories[storyID]; ok {
		return s, nil
	}
	return domain.Story{}, domain.ErrStoryNotFound
}

func (l *countingLoader) Stories(_ context.Context) ([]domain.Story, error) {
	l.loads++
	out := make([]domain.Story, 0, len(l.stories))
	for _, s := range l.stories {
		out = append(out, s)
	}
	return out, nil
}

func TestStoryCacheFillsOnMiss(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	loader := &countingLoader{stories: map[string]domain.Story{
		"s1": {ID: "s1", Title: "A Story"},
	}}
	cache := NewStoryCache(client, loader, time.Minute)
	ctx := context.Background()

	story, err := cache.Story(ctx, "s1")
	if err != nil {
		t.Fatalf("story: %v", err)
	}
	if story.Title != "A Story" {
		t.Fatalf("unexpected story %+v", story)
	}
	if !mr.Exists("heritage:story:s1") {
		t.Fatalf("expected story cached in redis")
	}

	// Second read is served from the cache.
	if _, err := cache.Story(ctx, "s1"); err != nil {
		t.Fatalf("story: %v", err)
	}
	if loader.loads != 1 {
		t.Fatalf("expected a single loader hit, got %d", loader.loads)
	}
}

func TestStoryCacheMissPropagates(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewStoryCache(client, &countingLoader{stories: map[string]domain.Story{}}, time.Minute)

	if _, err := cache.Story(context.Background(), "ghost"); err != domain.ErrStoryNotFound {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
	if mr.Exists("heritage:story:ghost") {
		t.Fatalf("load failures must not be cached")
	}
}

func TestStoriesListCached(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	loader := &countingLoader{stories: map[string]domain.Story{
		"s1": {ID: "s1"},
		"s2": {ID: "s2"},
	}}
	cache := NewStoryCache(client, loader, time.Minute)
	ctx := context.Background()

	stories, err := cache.Stories(ctx)
	if err != nil {
		t.Fatalf("stories: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("expected 2 stories, got %d", len(stories))
	}
	if _, err := cache.Stories(ctx); err != nil {
		t.Fatalf("stories: %v", err)
	}
	if loader.loads != 1 {
		t.Fatalf("expected a single loader hit, got %d", loader.loads)
	}
}
