package job

import (
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/service"
	"context"
	log "log/slog"
	"time"
)

// TopicRefreshJob 定时重新生成发现页话题，AI 不可用时保留旧缓存
type TopicRefreshJob struct {
	topicSvc service.TopicService
	locker   Locker
}

func NewTopicRefreshJob(topicSvc service.TopicService, locker Locker) *TopicRefreshJob {
	return &TopicRefreshJob{topicSvc: topicSvc, locker: locker}
}

func (s *TopicRefreshJob) Run() {
	runLocked("topic", consts.TopicRefreshLock, 2*time.Minute, s.locker, func(ctx context.Context) {
		topics, err := s.topicSvc.Refresh(ctx)
		if err != nil {
			log.ErrorContext(ctx, "failed to cache discover topics", "err", err)
			return
		}
		if len(topics) == 0 {
			log.WarnContext(ctx, "ai returned no topics, keep previous cache")
			return
		}
		log.InfoContext(ctx, "discover topics refreshed", "count", len(topics))
	})
}
