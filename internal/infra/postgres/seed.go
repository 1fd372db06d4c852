package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uptrace/bun"

	"heritage-explorer-service/internal/domain"
)

type storyRow struct {
	bun.BaseModel `bun:"table:stories"`

	ID  string          `bun:"id,pk"`
	Doc json.RawMessage `bun:"doc,type:jsonb,notnull"`
}

// SeedStories upserts story documents. Existing rows are overwritten, so the
// seed can be re-run after content edits.
func SeedStories(ctx context.Context, db *bun.DB, stories []domain.Story) error {
	for _, story := range stories {
		doc, err := json.Marshal(story)
		if err != nil {
			return fmt.Errorf("marshal story %s: %w", story.ID, err)
		}
		row := &storyRow{ID: story.ID, Doc: doc}
		_, err = db.NewInsert().
			Model(row).
			On("CONFLICT (id) DO UPDATE").
			Set("doc = EXCLUDED.doc").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("insert story %s: %w", story.ID, err)
		}
	}
	return nil
}
