package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"heritage-explorer-service/internal/catalog"
	"heritage-explorer-service/internal/domain"
)

// StoryCache fronts a catalog.StoryLoader with Redis. Stories are cached as
// JSON documents under quiz-style keys:
//
//	SET heritage:story:{storyID} {json}
//	SET heritage:stories        {json array}
//
// Misses go through singleflight so a cold story is loaded once.
type StoryCache struct {
	client *redis.Client
	loader catalog.StoryLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewStoryCache(client *redis.Client, loader catalog.StoryLoader, ttl time.Duration) *StoryCache {
	return &StoryCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *StoryCache) Story(ctx context.Context, storyID string) (domain.Story, error) {
	key := c.storyKey(storyID)
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var story domain.Story
		if err := json.Unmarshal(data, &story); err == nil {
			return story, nil
		}
	}

	result, err, _ := c.sf.Do(storyID, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var story domain.Story
			if err := json.Unmarshal(data, &story); err == nil {
				return story, nil
			}
		}

		story, err := c.loader.Story(ctx, storyID)
		if err != nil {
			return domain.Story{}, err
		}
		if data, err := json.Marshal(story); err == nil {
			_ = c.client.Set(ctx, key, data, c.ttlWithJitter()).Err()
		}
		return story, nil
	})
	if err != nil {
		return domain.Story{}, err
	}
	return result.(domain.Story), nil
}

func (c *StoryCache) Stories(ctx context.Context) ([]domain.Story, error) {
	if data, err := c.client.Get(ctx, c.listKey()).Bytes(); err == nil {
		var stories []domain.Story
		if err := json.Unmarshal(data, &stories); err == nil {
			return stories, nil
		}
	}

	result, err, _ := c.sf.Do("__list", func() (interface{}, error) {
		stories, err := c.loader.Stories(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(stories); err == nil {
			_ = c.client.Set(ctx, c.listKey(), data, c.ttlWithJitter()).Err()
		}
		return stories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Story), nil
}

func (c *StoryCache) storyKey(storyID string) string {
	return "heritage:story:" + storyID
}

func (c *StoryCache) listKey() string {
	return "heritage:stories"
}

func (c *StoryCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
