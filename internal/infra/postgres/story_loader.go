package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"heritage-explorer-service/internal/domain"
)

// StoryLoader loads story documents (JSONB) from Postgres.
type StoryLoader struct {
	pool *pgxpool.Pool
}

func NewStoryLoader(pool *pgxpool.Pool) *StoryLoader {
	return &StoryLoader{pool: pool}
}

func (l *StoryLoader) Story(ctx context.Context, storyID string) (domain.Story, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT doc FROM stories WHERE id=$1`, storyID).Scan(&raw)
	if err == pgx.ErrNoRows {
		return domain.Story{}, domain.ErrStoryNotFound
	}
	if err != nil {
		return domain.Story{}, fmt.Errorf("load story: %w", err)
	}
	var story domain.Story
	if err := json.Unmarshal(raw, &story); err != nil {
		return domain.Story{}, fmt.Errorf("unmarshal story: %w", err)
	}
	return story, nil
}

func (l *StoryLoader) Stories(ctx context.Context) ([]domain.Story, error) {
	rows, err := l.pool.Query(ctx, `SELECT doc FROM stories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	var stories []domain.Story
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		var story domain.Story
		if err := json.Unmarshal(raw, &story); err != nil {
			return nil, fmt.Errorf("unmarshal story: %w", err)
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}
