package job

import (
	"Kajoogram/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// Locker 分布式锁，由 redis.Store 实现
type Locker interface {
	TryLock(ctx context.Context, key, value string, ttl time.Duration, retryTimes int) (bool, error)
	UnLock(ctx context.Context, key, value string) error
}

// runLocked 多实例部署时同一任务只执行一次，拿不到锁直接跳过
func runLocked(name, lockKey string, ttl time.Duration, locker Locker, fn func(ctx context.Context)) {
	ctx := logger.WithTraceID(context.Background(), logger.NewTraceID("job-"+name))
	ctx, cancel := context.WithTimeout(ctx, ttl)
	defer cancel()

	owner := uuid.NewString()
	ok, err := locker.TryLock(ctx, lockKey, owner, ttl, 1)
	if err != nil {
		log.ErrorContext(ctx, "failed to acquire job lock", "job", name, "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "job is running elsewhere, skip", "job", name)
		return
	}
	defer func() {
		if err := locker.UnLock(context.Background(), lockKey, owner); err != nil {
			log.WarnContext(ctx, "failed to release job lock", "job", name, "err", err)
		}
	}()

	fn(ctx)
}
