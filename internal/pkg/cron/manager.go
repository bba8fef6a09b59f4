package cron

import (
	"Kajoogram/internal/api/config"
	"Kajoogram/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	cfg             config.CronConfig
	topicRefreshJob *job.TopicRefreshJob
	mediaCleanupJob *job.MediaCleanupJob
}

func NewCronManager(cfg config.CronConfig, topicRefreshJob *job.TopicRefreshJob, mediaCleanupJob *job.MediaCleanupJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		cfg:             cfg,
		topicRefreshJob: topicRefreshJob,
		mediaCleanupJob: mediaCleanupJob,
	}
}

// RegisterJobs 注册定时任务，表达式为空的任务不启用
func (s *Manager) RegisterJobs() error {
	jobs := []struct {
		name string
		spec string
		job  cron.Job
	}{
		{"topic_refresh", s.cfg.TopicRefresh, s.topicRefreshJob},
		{"media_cleanup", s.cfg.MediaCleanup, s.mediaCleanupJob},
	}
	for _, j := range jobs {
		if j.spec == "" {
			log.Info("Cron 任务未配置，跳过", "job", j.name)
			continue
		}
		if _, err := s.engine.AddJob(j.spec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(j.job)); err != nil {
			return err
		}
		log.Info("Cron 任务已注册", "job", j.name, "spec", j.spec)
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
