package redis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/port"
)

// releaseScript deletes the lock only while it still carries our owner
// token, so an expired lease taken over by another dispatcher is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// renewScript extends the lease under the same owner check. It returns 0
// once the key has expired or belongs to someone else.
var renewScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

// NewClient builds a Redis client from configuration.
func NewClient(cfg configs.Redis) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// DispatchLocker implements port.DispatchLocker with a SET NX lease. The TTL
// bounds how long a crashed dispatcher blocks a retry; a live holder renews
// the lease every TTL/3 until it releases.
type DispatchLocker struct {
	rdb    goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewDispatchLocker returns a locker using rdb.
func NewDispatchLocker(rdb goredis.Cmdable, ttl time.Duration, logger *slog.Logger) *DispatchLocker {
	return &DispatchLocker{rdb: rdb, ttl: ttl, logger: logger}
}

func lockKey(campaignID string) string {
	return fmt.Sprintf("newsletter:dispatch:%s", campaignID)
}

// AcquireDispatch takes the lease or fails with port.ErrDispatchInProgress.
func (l *DispatchLocker) AcquireDispatch(ctx context.Context, campaignID string) (func(), error) {
	key := lockKey(campaignID)
	owner := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, owner, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire dispatch lock: %w", err)
	}
	if !ok {
		return nil, port.ErrDispatchInProgress
	}

	renewCtx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.renew(renewCtx, key, owner, campaignID)
	}()

	var once sync.Once
	release := func() {
		once.Do(func() {
			stop()
			<-done

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, l.rdb, []string{key}, owner).Err(); err != nil {
				l.logger.Warn("release dispatch lock",
					slog.String("campaign_id", campaignID), slog.Any("error", err))
			}
		})
	}
	return release, nil
}

func (l *DispatchLocker) renew(ctx context.Context, key, owner, campaignID string) {
	interval := l.ttl / 3
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		renewed, err := renewScript.Run(ctx, l.rdb, []string{key}, owner, l.ttl.Milliseconds()).Int()
		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			// Transient; the next tick retries while the lease has time left.
			l.logger.Warn("renew dispatch lock",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
		case renewed == 0:
			l.logger.Error("dispatch lock lost",
				slog.String("campaign_id", campaignID))
			return
		}
	}
}
