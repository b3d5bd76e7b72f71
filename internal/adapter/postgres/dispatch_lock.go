package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"croevo-console/internal/core/port"
)

// dispatchLockSpace namespaces the two-key advisory locks taken for
// dispatches.
const dispatchLockSpace int32 = 0x6e6c // "nl"

// AdvisoryLocker implements port.DispatchLocker with session-level advisory
// locks. The lock lives on a pinned connection, so a crashed process loses
// it together with its session.
type AdvisoryLocker struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewAdvisoryLocker returns a locker backed by pool.
func NewAdvisoryLocker(pool *pgxpool.Pool, logger *slog.Logger) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool, logger: logger}
}

// AcquireDispatch tries the lock without waiting.
func (l *AdvisoryLocker) AcquireDispatch(ctx context.Context, campaignID string) (func(), error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	var ok bool
	err = conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1, hashtext($2))`, dispatchLockSpace, campaignID).Scan(&ok)
	if err != nil {
		conn.Release()
		return nil, err
	}
	if !ok {
		conn.Release()
		return nil, port.ErrDispatchInProgress
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := conn.Exec(ctx, `SELECT pg_advisory_unlock($1, hashtext($2))`, dispatchLockSpace, campaignID); err != nil {
			l.logger.Error("advisory unlock failed, dropping connection",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
			// Closing the session releases the lock server-side.
			_ = conn.Conn().Close(ctx)
		}
		conn.Release()
	}
	return release, nil
}
