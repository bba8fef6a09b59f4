package analytics_test

import (
	"Kajoogram/internal/pkg/analytics"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func scenario() []analytics.Record {
	return []analytics.Record{
		{ID: 1, Title: "first", Timestamp: "2024-01-01T09:00:00Z", Views: 10},
		{ID: 2, Title: "second", Timestamp: "2024-01-01T18:30:00Z", Views: 5},
		{ID: 3, Title: "third", Timestamp: "2024-01-03T08:00:00Z", Views: 7},
	}
}

func sampleRecords() []analytics.Record {
	return []analytics.Record{
		{ID: 10, Type: "image", Timestamp: "2024-03-30T10:00:00Z", Views: 3, Likes: 1, Comments: 0, Shares: 2},
		{ID: 9, Type: "video", Timestamp: "2024-03-28T10:00:00Z", Views: 8, Likes: 4, Comments: 1, Shares: 0},
		{ID: 8, Type: "image", Timestamp: "2024-03-20T10:00:00Z", Views: 8, Likes: 2, Comments: 5, Shares: 1},
		{ID: 7, Type: "video", Timestamp: "2024-03-01T10:00:00Z", Views: 1, Likes: 9, Comments: 2, Shares: 4},
		{ID: 6, Type: "image", Timestamp: "2024-01-15T10:00:00Z", Views: 20, Likes: 0, Comments: 3, Shares: 3},
		{ID: 5, Type: "image", Timestamp: "2023-06-01T10:00:00Z", Views: 2, Likes: 6, Comments: 7, Shares: 5},
	}
}

func TestConcreteScenario(t *testing.T) {
	now := mustTime(t, "2024-01-03T12:00:00Z")
	window := analytics.SelectWindow(scenario(), analytics.Last7Days(), now, time.UTC)

	series := analytics.AggregateByDay(window, analytics.MetricViews, time.UTC)
	assert.Equal(t, []analytics.DayPoint{
		{Date: "2024-01-01", Value: 15},
		{Date: "2024-01-03", Value: 7},
	}, series)
	assert.Equal(t, int64(22), analytics.GrandTotal(window, analytics.MetricViews))

	top := analytics.TopN(window, analytics.MetricViews, 1)
	require.Len(t, top, 1)
	assert.Equal(t, uint64(1), top[0].ID)
}

func TestSumInvariant(t *testing.T) {
	now := mustTime(t, "2024-04-01T00:00:00Z")
	filters := []analytics.DateFilter{
		analytics.Today(), analytics.Last7Days(), analytics.Last30Days(),
		analytics.Last90Days(), analytics.AllTime(),
		analytics.CustomRange("2024-03-01", "2024-03-28"),
	}
	for _, f := range filters {
		for _, m := range analytics.Metrics {
			window := analytics.SelectWindow(sampleRecords(), f, now, time.UTC)
			series := analytics.AggregateByDay(window, m, time.UTC)

			var direct int64
			for _, r := range window {
				direct += r.Value(m)
			}
			assert.Equal(t, direct, analytics.SeriesTotal(series), "filter=%s metric=%s", f.Kind, m)
			assert.Equal(t, direct, analytics.GrandTotal(window, m), "filter=%s metric=%s", f.Kind, m)
		}
	}
}

func TestWindowMonotonicity(t *testing.T) {
	now := mustTime(t, "2024-04-01T00:00:00Z")
	ids := func(f analytics.DateFilter) map[uint64]bool {
		set := map[uint64]bool{}
		for _, r := range analytics.SelectWindow(sampleRecords(), f, now, time.UTC) {
			set[r.ID] = true
		}
		return set
	}
	chain := []map[uint64]bool{
		ids(analytics.Last7Days()),
		ids(analytics.Last30Days()),
		ids(analytics.Last90Days()),
		ids(analytics.AllTime()),
	}
	for i := 0; i+1 < len(chain); i++ {
		for id := range chain[i] {
			assert.True(t, chain[i+1][id], "id %d missing from wider window %d", id, i+1)
		}
	}
	assert.Len(t, chain[0], 2)
	assert.Len(t, chain[3], 6)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, analytics.AggregateByDay(nil, analytics.MetricLikes, time.UTC))
	assert.Empty(t, analytics.TopN(nil, analytics.MetricLikes, 3))
	assert.Zero(t, analytics.GrandTotal(nil, analytics.MetricLikes))
	assert.Empty(t, analytics.SelectWindow(nil, analytics.AllTime(), time.Now(), time.UTC))

	r := analytics.Build(nil, analytics.Last30Days(), analytics.MetricShares, 0, time.Now(), time.UTC)
	assert.Empty(t, r.Series)
	assert.Zero(t, r.Total)
	assert.Empty(t, r.Top)
}

func TestTopNCardinalityAndOrdering(t *testing.T) {
	now := mustTime(t, "2024-04-01T00:00:00Z")
	window := analytics.SelectWindow(sampleRecords(), analytics.AllTime(), now, time.UTC)

	for _, m := range analytics.Metrics {
		for _, n := range []int{1, 3, 6, 10} {
			top := analytics.TopN(window, m, n)
			assert.Len(t, top, min(n, len(window)))
			for i := 0; i+1 < len(top); i++ {
				assert.GreaterOrEqual(t, top[i].Value(m), top[i+1].Value(m))
			}
		}
	}
	assert.Len(t, analytics.TopN(window, analytics.MetricViews, 0), analytics.DefaultTopN)
}

func TestTopNStableTieBreak(t *testing.T) {
	records := []analytics.Record{
		{ID: 3, Timestamp: "2024-01-03T00:00:00Z", Likes: 4},
		{ID: 2, Timestamp: "2024-01-02T00:00:00Z", Likes: 4},
		{ID: 1, Timestamp: "2024-01-01T00:00:00Z", Likes: 9},
	}
	top := analytics.TopN(records, analytics.MetricLikes, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []uint64{1, 3, 2}, []uint64{top[0].ID, top[1].ID, top[2].ID})
}

func TestBadRecordResilience(t *testing.T) {
	now := mustTime(t, "2024-04-01T00:00:00Z")
	bad := []analytics.Record{
		{ID: 99, Timestamp: "not-a-date", Views: 1000, Likes: 1000},
		{ID: 98, Timestamp: "2024-03-31T00:00:00Z", Views: -4},
	}
	clean := sampleRecords()
	dirty := append(append([]analytics.Record{}, bad[0]), clean...)
	dirty = append(dirty, bad[1])

	for _, f := range []analytics.DateFilter{analytics.AllTime(), analytics.Last30Days()} {
		for _, m := range analytics.Metrics {
			want := analytics.Build(clean, f, m, 5, now, time.UTC)
			got := analytics.Build(dirty, f, m, 5, now, time.UTC)
			assert.Equal(t, want.Series, got.Series)
			assert.Equal(t, want.Total, got.Total)
			assert.Equal(t, want.Top, got.Top)
			assert.Equal(t, want.WindowSize, got.WindowSize)
			assert.Equal(t, 2, got.Skipped)
		}
	}
	assert.Equal(t, analytics.GrandTotal(clean, analytics.MetricViews), analytics.GrandTotal(dirty, analytics.MetricViews))
}

func TestListPosts(t *testing.T) {
	records := []analytics.Record{
		{ID: 1, Title: "Summer look", Type: "image", Timestamp: "2024-03-01T00:00:00Z", Likes: 5},
		{ID: 2, Title: "Winter look", Type: "video", Timestamp: "2024-03-03T00:00:00Z", Likes: 1},
		{ID: 3, Title: "Street style", Type: "image", Timestamp: "2024-03-02T00:00:00Z", Likes: 9},
		{ID: 4, Title: "broken", Type: "image", Timestamp: "??"},
	}

	recent := analytics.ListPosts(records, analytics.MetricLikes, analytics.ListOptions{}, time.UTC)
	assert.Equal(t, []uint64{2, 3, 1}, idsOf(recent))

	high := analytics.ListPosts(records, analytics.MetricLikes, analytics.ListOptions{Sort: analytics.SortHigh}, time.UTC)
	assert.Equal(t, []uint64{3, 1, 2}, idsOf(high))

	low := analytics.ListPosts(records, analytics.MetricLikes, analytics.ListOptions{Sort: analytics.SortLow}, time.UTC)
	assert.Equal(t, []uint64{2, 1, 3}, idsOf(low))

	looks := analytics.ListPosts(records, analytics.MetricLikes, analytics.ListOptions{Search: "LOOK", ContentType: analytics.ContentPost}, time.UTC)
	assert.Equal(t, []uint64{1}, idsOf(looks))
}

func TestTotals(t *testing.T) {
	totals := analytics.Totals(scenario())
	assert.Equal(t, int64(22), totals[analytics.MetricViews])
	assert.Zero(t, totals[analytics.MetricShares])
}

func idsOf(records []analytics.Record) []uint64 {
	ids := make([]uint64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
