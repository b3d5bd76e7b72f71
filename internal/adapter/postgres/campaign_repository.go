package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
)

const campaignColumns = `id, subject, content, status, sent_at, sent_count, created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Subject, &c.Content, &c.Status, &c.SentAt, &c.SentCount, &c.CreatedAt)
	return c, err
}

// CreateCampaign inserts a new draft.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, subject, content string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`INSERT INTO newsletters (subject, content, status) VALUES ($1, $2, 'draft') RETURNING `+campaignColumns,
		subject, content))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM newsletters WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns every campaign, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM newsletters ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// UpdateDraft edits a campaign only while it is still a draft.
func (r *CampaignRepository) UpdateDraft(ctx context.Context, id, subject, content string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletters SET subject = $2, content = $3 WHERE id = $1 AND status = 'draft'`,
		id, subject, content)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.notDraft(ctx, id)
}

// MarkCampaignSent is the draft to sent transition. The status predicate in
// the WHERE clause is the compare-and-set: of two concurrent callers only one
// can observe an affected row.
func (r *CampaignRepository) MarkCampaignSent(ctx context.Context, id string, sentCount int, sentAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletters SET status = 'sent', sent_at = $2, sent_count = $3 WHERE id = $1 AND status = 'draft'`,
		id, sentAt, sentCount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.notDraft(ctx, id)
}

// notDraft explains why a conditional draft write touched no row.
func (r *CampaignRepository) notDraft(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM newsletters WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrCampaignNotFound
	}
	return port.ErrAlreadySent
}

// DeleteCampaign removes a campaign permanently.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM newsletters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}
