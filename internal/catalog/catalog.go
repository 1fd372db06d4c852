// Package catalog holds the read-only heritage content: sites, biodiversity
// records, branching stories, quiz questions, and badge definitions. Sites,
// records, questions, and badges are compiled in; stories go through a
// Loader so they can come from a document store with a cache in front.
package catalog

import (
	"context"
	"sort"
	"strings"

	"heritage-explorer-service/internal/domain"
)

// StoryLoader fetches story content from a backing store.
type StoryLoader interface {
	Story(ctx context.Context, storyID string) (domain.Story, error)
	Stories(ctx context.Context) ([]domain.Story, error)
}

// Catalog is the read-only content surface the rest of the service consumes.
type Catalog struct {
	sites     []domain.HeritageSite
	records   []domain.BiodiversityRecord
	questions []domain.QuizQuestion
	badges    []domain.Badge
	stories   StoryLoader
}

func New(stories StoryLoader) *Catalog {
	return &Catalog{
		sites:     heritageSites,
		records:   biodiversityRecords,
		questions: quizQuestions,
		badges:    badges,
		stories:   stories,
	}
}

func (c *Catalog) Sites() []domain.HeritageSite {
	out := make([]domain.HeritageSite, len(c.sites))
	copy(out, c.sites)
	return out
}

// BiodiversityRecords returns records, optionally filtered by category and a
// case-insensitive search over species and description.
func (c *Catalog) BiodiversityRecords(category, search string) []domain.BiodiversityRecord {
	search = strings.ToLower(search)
	out := make([]domain.BiodiversityRecord, 0, len(c.records))
	for _, r := range c.records {
		if category != "" && category != "all" && r.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Species), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (c *Catalog) QuizQuestions() []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, len(c.questions))
	copy(out, c.questions)
	return out
}

func (c *Catalog) Badges() []domain.Badge {
	out := make([]domain.Badge, len(c.badges))
	copy(out, c.badges)
	return out
}

func (c *Catalog) Story(ctx context.Context, storyID string) (domain.Story, error) {
	return c.stories.Story(ctx, storyID)
}

func (c *Catalog) Stories(ctx context.Context) ([]domain.Story, error) {
	return c.stories.Stories(ctx)
}

// StaticStoryLoader serves the compiled-in stories (default when no document
// store is configured, and for tests).
type StaticStoryLoader struct {
	stories map[string]domain.Story
}

func NewStaticStoryLoader() *StaticStoryLoader {
	byID := make(map[string]domain.Story, len(stories))
	for _, s := range stories {
		byID[s.ID] = s
	}
	return &StaticStoryLoader{stories: byID}
}

func (l *StaticStoryLoader) Story(_ context.Context, storyID string) (domain.Story, error) {
	if s, ok := l.stories[storyID]; ok {
		return s, nil
	}
	return domain.Story{}, domain.ErrStoryNotFound
}

func (l *StaticStoryLoader) Stories(_ context.Context) ([]domain.Story, error) {
	out := make([]domain.Story, 0, len(l.stories))
	for _, s := range l.stories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SampleStories exposes the built-in stories for seeding a document store.
func SampleStories() []domain.Story {
	out := make([]domain.Story, len(stories))
	copy(out, stories)
	return out
}
