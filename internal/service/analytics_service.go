package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/analytics"
	"Kajoogram/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/samber/lo"
)

type AnalyticsService interface {
	Overview(ctx context.Context, userID uint64, q *dto.AnalyticsQuery) (*dto.OverviewDTO, error)
	Report(ctx context.Context, userID uint64, metric string, q *dto.AnalyticsQuery) (*analytics.Report, error)
	Posts(ctx context.Context, userID uint64, metric string, q *dto.AnalyticsPostsQuery) ([]analytics.Record, error)
}

type analyticsServiceImpl struct {
	postRepo repository.PostRepo
	loc      *time.Location
	topN     int
	now      func() time.Time
}

func NewAnalyticsService(postRepo repository.PostRepo, loc *time.Location, topN int) AnalyticsService {
	return &analyticsServiceImpl{postRepo: postRepo, loc: loc, topN: topN, now: time.Now}
}

func (s *analyticsServiceImpl) Overview(ctx context.Context, userID uint64, q *dto.AnalyticsQuery) (*dto.OverviewDTO, error) {
	f, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	records, err := s.records(ctx, userID)
	if err != nil {
		return nil, err
	}
	window := analytics.SelectWindow(records, f, s.now(), s.loc)
	totals := analytics.Totals(window)
	return &dto.OverviewDTO{
		Filter:     string(f.Kind),
		Totals:     lo.MapKeys(totals, func(_ int64, m analytics.Metric) string { return string(m) }),
		WindowSize: len(window),
		Skipped:    len(records) - countValid(records, s.loc),
	}, nil
}

func (s *analyticsServiceImpl) Report(ctx context.Context, userID uint64, metric string, q *dto.AnalyticsQuery) (*analytics.Report, error) {
	m, err := analytics.ParseMetric(metric)
	if err != nil {
		return nil, ErrMetricInvalid
	}
	f, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	records, err := s.records(ctx, userID)
	if err != nil {
		return nil, err
	}
	n := s.topN
	if q.TopN > 0 {
		n = q.TopN
	}
	report := analytics.Build(records, f, m, n, s.now(), s.loc)
	if report.Skipped > 0 {
		log.DebugContext(ctx, "analytics skipped malformed posts", "user_id", userID, "skipped", report.Skipped)
	}
	return report, nil
}

func (s *analyticsServiceImpl) Posts(ctx context.Context, userID uint64, metric string, q *dto.AnalyticsPostsQuery) ([]analytics.Record, error) {
	m, err := analytics.ParseMetric(metric)
	if err != nil {
		return nil, ErrMetricInvalid
	}
	f, err := parseFilter(&q.AnalyticsQuery)
	if err != nil {
		return nil, err
	}
	records, err := s.records(ctx, userID)
	if err != nil {
		return nil, err
	}
	window := analytics.SelectWindow(records, f, s.now(), s.loc)
	return analytics.ListPosts(window, m, analytics.ListOptions{
		Search:      q.Search,
		ContentType: lo.Ternary(q.ContentType == "", analytics.ContentAll, analytics.ContentType(q.ContentType)),
		Sort:        lo.Ternary(q.Sort == "", analytics.SortRecent, analytics.SortOrder(q.Sort)),
	}, s.loc), nil
}

// records 按仓库顺序（最新在前）投影为聚合记录
func (s *analyticsServiceImpl) records(ctx context.Context, userID uint64) ([]analytics.Record, error) {
	posts, err := s.postRepo.GetPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(posts, func(p *model.Post, _ int) analytics.Record {
		return analytics.Record{
			ID:        p.ID,
			Title:     p.Title,
			MediaURL:  p.MediaURL,
			Type:      p.Type,
			Timestamp: p.Timestamp,
			Views:     p.Views,
			Likes:     p.Likes,
			Comments:  p.Comments,
			Shares:    p.Shares,
		}
	}), nil
}

func parseFilter(q *dto.AnalyticsQuery) (analytics.DateFilter, error) {
	if q == nil {
		return analytics.Last7Days(), nil
	}
	f, ok := analytics.ParseFilter(q.Filter, q.Start, q.End)
	if !ok {
		return analytics.DateFilter{}, ErrParamInvalid
	}
	return f, nil
}

func countValid(records []analytics.Record, loc *time.Location) int {
	return lo.CountBy(records, func(r analytics.Record) bool { return r.Valid(loc) })
}
