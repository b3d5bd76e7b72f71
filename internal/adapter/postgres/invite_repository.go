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

const inviteColumns = `id, token, email, created_by, used_by, used_at, expires_at, created_at`

// InviteRepository implements port.InviteRepository using pgxpool.
type InviteRepository struct {
	pool *pgxpool.Pool
}

// NewInviteRepository returns a new repository instance.
func NewInviteRepository(pool *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{pool: pool}
}

func scanInvite(row pgx.Row) (domain.Invite, error) {
	var i domain.Invite
	err := row.Scan(&i.ID, &i.Token, &i.Email, &i.CreatedBy, &i.UsedBy, &i.UsedAt, &i.ExpiresAt, &i.CreatedAt)
	return i, err
}

// CreateInvite inserts an unused invite.
func (r *InviteRepository) CreateInvite(ctx context.Context, inv domain.Invite) (*domain.Invite, error) {
	created, err := scanInvite(r.pool.QueryRow(ctx,
		`INSERT INTO admin_invites (token, email, created_by, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5) RETURNING `+inviteColumns,
		inv.Token, inv.Email, inv.CreatedBy, inv.ExpiresAt, inv.CreatedAt))
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindInviteByToken returns the invite carrying token.
func (r *InviteRepository) FindInviteByToken(ctx context.Context, token string) (*domain.Invite, error) {
	return r.get(ctx, `SELECT `+inviteColumns+` FROM admin_invites WHERE token = $1`, token)
}

// GetInvite returns an invite by id.
func (r *InviteRepository) GetInvite(ctx context.Context, id string) (*domain.Invite, error) {
	return r.get(ctx, `SELECT `+inviteColumns+` FROM admin_invites WHERE id = $1`, id)
}

func (r *InviteRepository) get(ctx context.Context, query string, arg string) (*domain.Invite, error) {
	inv, err := scanInvite(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListInvites returns every invite, newest first.
func (r *InviteRepository) ListInvites(ctx context.Context) ([]domain.Invite, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+inviteColumns+` FROM admin_invites ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invite, error) {
		return scanInvite(row)
	})
}

// DeleteInvite removes an invite whatever its state.
func (r *InviteRepository) DeleteInvite(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM admin_invites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrInviteNotFound
	}
	return nil
}

// ClaimInvite marks the invite used and grants the admin role in one
// transaction. The conditional UPDATE takes the row lock, so a concurrent
// claim of the same invite blocks until this transaction ends, re-evaluates
// the predicate and affects no row.
func (r *InviteRepository) ClaimInvite(ctx context.Context, id, principalID string, now time.Time) (granted bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE admin_invites SET used_by = $2, used_at = $3
WHERE id = $1 AND used_at IS NULL AND expires_at > $3`, id, principalID, now)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		err = claimFailure(ctx, tx, id, now)
		return false, err
	}

	tag, err = tx.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		principalID, string(domain.RoleAdmin))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// claimFailure tells apart the reasons a claim UPDATE matched no row.
func claimFailure(ctx context.Context, tx pgx.Tx, id string, now time.Time) error {
	var (
		usedAt    *time.Time
		expiresAt time.Time
	)
	err := tx.QueryRow(ctx, `SELECT used_at, expires_at FROM admin_invites WHERE id = $1`, id).Scan(&usedAt, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrInviteNotFound
	}
	if err != nil {
		return err
	}
	if usedAt != nil {
		return port.ErrInviteAlreadyUsed
	}
	if !now.Before(expiresAt) {
		return port.ErrInviteExpired
	}
	// Unused and unexpired yet unmatched only happens on clock skew between
	// the predicate and this read.
	return port.ErrInviteAlreadyUsed
}
