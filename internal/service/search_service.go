package service

import (
	"Kajoogram/internal/pkg/mongo"
	"Kajoogram/internal/pkg/search"
	"context"
	log "log/slog"
	"strings"
	"time"
)

type SearchService interface {
	Search(ctx context.Context, userID uint64, query string, filters search.Filters) (*search.Results, error)
	History(ctx context.Context, userID uint64) ([]string, error)
	ClearHistory(ctx context.Context, userID uint64) error
	// NewLiveSession 会话期间复用同一份目录快照；输入过程不写历史
	NewLiveSession(ctx context.Context, onResult search.ResultFunc) (*search.Session, error)
}

type searchServiceImpl struct {
	engine   *search.Engine
	videos   VideoService
	history  mongo.SearchHistoryRepo
	debounce time.Duration
	now      func() time.Time
}

func NewSearchService(engine *search.Engine, videos VideoService, history mongo.SearchHistoryRepo, debounce time.Duration) SearchService {
	return &searchServiceImpl{
		engine:   engine,
		videos:   videos,
		history:  history,
		debounce: debounce,
		now:      time.Now,
	}
}

func (s *searchServiceImpl) Search(ctx context.Context, userID uint64, query string, filters search.Filters) (*search.Results, error) {
	catalog, err := s.videos.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	res := s.engine.Search(catalog, query, filters.Normalize(), s.now())
	s.record(ctx, userID, query)
	return res, nil
}

func (s *searchServiceImpl) History(ctx context.Context, userID uint64) ([]string, error) {
	return s.history.List(ctx, userID)
}

func (s *searchServiceImpl) ClearHistory(ctx context.Context, userID uint64) error {
	return s.history.Clear(ctx, userID)
}

func (s *searchServiceImpl) NewLiveSession(ctx context.Context, onResult search.ResultFunc) (*search.Session, error) {
	catalog, err := s.videos.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return search.NewSession(s.engine, func() *search.Catalog { return catalog }, s.debounce, onResult), nil
}

// record 历史写入失败只记录日志
func (s *searchServiceImpl) record(ctx context.Context, userID uint64, query string) {
	query = strings.TrimSpace(query)
	if userID == 0 || !search.Recordable(query) {
		return
	}
	if _, err := s.history.Push(ctx, userID, query, search.HistoryLimit); err != nil {
		log.WarnContext(ctx, "failed to record search history", "user_id", userID, "err", err)
	}
}
