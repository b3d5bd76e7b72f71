package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
)

const subscriberColumns = `id, email, is_active, subscribed_at`

// SubscriberRepository implements port.SubscriberRepository using pgxpool.
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a new repository instance.
func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// CreateSubscriber inserts an active subscriber. The unique index on
// lower(email) turns a duplicate into port.ErrAlreadySubscribed.
func (r *SubscriberRepository) CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	var s domain.Subscriber
	err := r.pool.QueryRow(ctx, `INSERT INTO subscribers (email) VALUES ($1) RETURNING `+subscriberColumns, email).
		Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt)
	if isUniqueViolation(err) {
		return nil, port.ErrAlreadySubscribed
	}
	if err != nil {
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}
	return &s, nil
}

// ListSubscribers returns every subscriber, newest first.
func (r *SubscriberRepository) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return r.list(ctx, `SELECT `+subscriberColumns+` FROM subscribers ORDER BY subscribed_at DESC`)
}

// ListActiveSubscribers returns the active subscribers in subscription order
// so batches are stable across retries.
func (r *SubscriberRepository) ListActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return r.list(ctx, `SELECT `+subscriberColumns+` FROM subscribers WHERE is_active ORDER BY subscribed_at, id`)
}

func (r *SubscriberRepository) list(ctx context.Context, query string) ([]domain.Subscriber, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscriber, error) {
		var s domain.Subscriber
		err := row.Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt)
		return s, err
	})
}

// SetSubscriberActive flips the active flag of one subscriber.
func (r *SubscriberRepository) SetSubscriberActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE subscribers SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrSubscriberNotFound
	}
	return nil
}

// DeleteSubscriber removes a subscriber permanently.
func (r *SubscriberRepository) DeleteSubscriber(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrSubscriberNotFound
	}
	return nil
}
