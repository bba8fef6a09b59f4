package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/analytics"
	"Kajoogram/internal/repository/mocks"
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalytics(t *testing.T, posts []*model.Post) AnalyticsService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mocks.NewMockPostRepo(ctrl)
	repo.EXPECT().GetPostsByUser(gomock.Any(), uint64(1)).Return(posts, nil).AnyTimes()
	svc := NewAnalyticsService(repo, time.UTC, 5).(*analyticsServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC) }
	return svc
}

func scenarioPosts() []*model.Post {
	return []*model.Post{
		{ID: 3, Title: "c", Type: model.PostTypeImage, Timestamp: "2024-01-03T08:00:00Z", Views: 7},
		{ID: 2, Title: "b", Type: model.PostTypeVideo, Timestamp: "2024-01-01T09:00:00Z", Views: 5},
		{ID: 1, Title: "a", Type: model.PostTypeImage, Timestamp: "2024-01-01T08:00:00Z", Views: 10},
	}
}

func TestAnalyticsService_Report(t *testing.T) {
	svc := newAnalytics(t, scenarioPosts())

	report, err := svc.Report(context.Background(), 1, "views", &dto.AnalyticsQuery{Filter: "7d", TopN: 1})
	require.NoError(t, err)
	assert.Equal(t, []analytics.DayPoint{
		{Date: "2024-01-01", Value: 15},
		{Date: "2024-01-03", Value: 7},
	}, report.Series)
	assert.Equal(t, int64(22), report.Total)
	require.Len(t, report.Top, 1)
	assert.Equal(t, uint64(1), report.Top[0].ID)
}

func TestAnalyticsService_SkipsMalformed(t *testing.T) {
	posts := append(scenarioPosts(), &model.Post{ID: 4, Timestamp: "yesterday", Views: 1000})
	svc := newAnalytics(t, posts)

	report, err := svc.Report(context.Background(), 1, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(22), report.Total)
	assert.Equal(t, 1, report.Skipped)

	overview, err := svc.Overview(context.Background(), 1, &dto.AnalyticsQuery{Filter: "all"})
	require.NoError(t, err)
	assert.Equal(t, int64(22), overview.Totals["views"])
	assert.Equal(t, 3, overview.WindowSize)
	assert.Equal(t, 1, overview.Skipped)
}

func TestAnalyticsService_InvalidInput(t *testing.T) {
	svc := newAnalytics(t, scenarioPosts())

	_, err := svc.Report(context.Background(), 1, "saves", &dto.AnalyticsQuery{})
	assert.ErrorIs(t, err, ErrMetricInvalid)

	_, err = svc.Report(context.Background(), 1, "views", &dto.AnalyticsQuery{Filter: "fortnight"})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestAnalyticsService_Posts(t *testing.T) {
	svc := newAnalytics(t, scenarioPosts())

	list, err := svc.Posts(context.Background(), 1, "views", &dto.AnalyticsPostsQuery{
		AnalyticsQuery: dto.AnalyticsQuery{Filter: "all"},
		ContentType:    "post",
		Sort:           "high",
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, uint64(3), list[1].ID)
}
