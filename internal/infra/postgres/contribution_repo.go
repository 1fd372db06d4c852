package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/uptrace/bun"

	"heritage-explorer-service/internal/domain"
)

// contributionRow maps the contributions table: moderation fields live in
// typed columns, the submitted content in a JSONB document.
type contributionRow struct {
	bun.BaseModel `bun:"table:contributions"`

	ID        int64           `bun:"id,pk,autoincrement"`
	Status    string          `bun:"status,notnull"`
	Doc       json.RawMessage `bun:"doc,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,notnull,default:now()"`
}

// contributionDoc is the JSONB body, content fields only; id, status, and
// created_at are authoritative in their columns.
type contributionDoc struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Region          string `json:"region"`
	Category        string `json:"category"`
	ContributorName string `json:"contributorName"`
}

// ContributionRepository is the bun-backed document store for the moderation
// queue. Each write is individually atomic; there is no cross-record
// transaction and no version check on status updates (last write wins).
type ContributionRepository struct {
	db *bun.DB
}

func NewContributionRepository(db *bun.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, c domain.Contribution) (domain.Contribution, error) {
	doc, err := json.Marshal(contributionDoc{
		Type:            c.Type,
		Title:           c.Title,
		Content:         c.Content,
		Region:          c.Region,
		Category:        c.Category,
		ContributorName: c.ContributorName,
	})
	if err != nil {
		return domain.Contribution{}, fmt.Errorf("marshal contribution: %w", err)
	}

	row := &contributionRow{
		Status:    c.Status,
		Doc:       doc,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.db.NewInsert().Model(row).Returning("id, created_at").Exec(ctx); err != nil {
		return domain.Contribution{}, fmt.Errorf("insert contribution: %w", err)
	}
	return rowToContribution(row)
}

func (r *ContributionRepository) List(ctx context.Context, status string) ([]domain.Contribution, error) {
	var rows []contributionRow
	q := r.db.NewSelect().Model(&rows).OrderExpr("created_at DESC, id DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	out := make([]domain.Contribution, 0, len(rows))
	for i := range rows {
		c, err := rowToContribution(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ContributionRepository) UpdateStatus(ctx context.Context, id, status string) (domain.Contribution, error) {
	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.Contribution{}, domain.ErrContributionNotFound
	}

	res, err := r.db.NewUpdate().
		Model((*contributionRow)(nil)).
		Set("status = ?", status).
		Where("id = ?", rowID).
		Exec(ctx)
	if err != nil {
		return domain.Contribution{}, fmt.Errorf("update contribution: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Contribution{}, domain.ErrContributionNotFound
	}

	row := &contributionRow{}
	err = r.db.NewSelect().Model(row).Where("id = ?", rowID).Scan(ctx)
	if err == sql.ErrNoRows {
		return domain.Contribution{}, domain.ErrContributionNotFound
	}
	if err != nil {
		return domain.Contribution{}, fmt.Errorf("reload contribution: %w", err)
	}
	return rowToContribution(row)
}

func (r *ContributionRepository) Counts(ctx context.Context) (domain.ContributionCounts, error) {
	counts := domain.ContributionCounts{}
	total, err := r.db.NewSelect().Model((*contributionRow)(nil)).Count(ctx)
	if err != nil {
		return counts, fmt.Errorf("count contributions: %w", err)
	}
	counts.Total = total

	for _, status := range []string{domain.StatusPending, domain.StatusApproved, domain.StatusRejected} {
		n, err := r.db.NewSelect().Model((*contributionRow)(nil)).Where("status = ?", status).Count(ctx)
		if err != nil {
			return counts, fmt.Errorf("count %s contributions: %w", status, err)
		}
		switch status {
		case domain.StatusPending:
			counts.Pending = n
		case domain.StatusApproved:
			counts.Approved = n
		case domain.StatusRejected:
			counts.Rejected = n
		}
	}
	return counts, nil
}

func rowToContribution(row *contributionRow) (domain.Contribution, error) {
	var doc contributionDoc
	if err := json.Unmarshal(row.Doc, &doc); err != nil {
		return domain.Contribution{}, fmt.Errorf("unmarshal contribution doc: %w", err)
	}
	return domain.Contribution{
		ID:              strconv.FormatInt(row.ID, 10),
		Type:            doc.Type,
		Title:           doc.Title,
		Content:         doc.Content,
		Region:          doc.Region,
		Category:        doc.Category,
		ContributorName: doc.ContributorName,
		Status:          row.Status,
		CreatedAt:       row.CreatedAt,
	}, nil
}
