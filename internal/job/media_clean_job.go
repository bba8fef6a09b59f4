package job

import (
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/service"
	"context"
	log "log/slog"
	"time"
)

// MediaCleanupJob 清理上传后一直未被帖子、商品、举报等引用的对象
type MediaCleanupJob struct {
	mediaSvc service.MediaService
	locker   Locker
}

func NewMediaCleanupJob(mediaSvc service.MediaService, locker Locker) *MediaCleanupJob {
	return &MediaCleanupJob{mediaSvc: mediaSvc, locker: locker}
}

func (s *MediaCleanupJob) Run() {
	runLocked("media", consts.MediaCleanupLock, 10*time.Minute, s.locker, func(ctx context.Context) {
		log.InfoContext(ctx, "start media cleanup job")
		count, err := s.mediaSvc.CleanupExpired(ctx)
		if err != nil {
			log.ErrorContext(ctx, "failed to get media temp hash", "err", err)
			return
		}
		if count > 0 {
			log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", count)
		}
	})
}
