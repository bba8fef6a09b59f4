package analytics_test

import (
	"Kajoogram/internal/pkg/analytics"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in      string
		want    analytics.Metric
		wantErr bool
	}{
		{"", analytics.MetricViews, false},
		{"views", analytics.MetricViews, false},
		{"Likes", analytics.MetricLikes, false},
		{" COMMENTS ", analytics.MetricComments, false},
		{"shares", analytics.MetricShares, false},
		{"saves", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := analytics.ParseMetric(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, analytics.ErrUnknownMetric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilter(t *testing.T) {
	f, ok := analytics.ParseFilter("", "", "")
	assert.True(t, ok)
	assert.Equal(t, analytics.Last7Days(), f)

	f, ok = analytics.ParseFilter("All Time", "2024-01-01", "")
	assert.True(t, ok)
	assert.Equal(t, analytics.AllTime(), f)

	f, ok = analytics.ParseFilter("custom", "2024-01-01", "2024-01-31")
	assert.True(t, ok)
	assert.Equal(t, analytics.CustomRange("2024-01-01", "2024-01-31"), f)

	_, ok = analytics.ParseFilter("yesterday", "", "")
	assert.False(t, ok)
}

func TestSelectWindowToday(t *testing.T) {
	records := []analytics.Record{
		{ID: 1, Timestamp: "2024-05-10T00:00:01Z"},
		{ID: 2, Timestamp: "2024-05-09T23:59:59Z"},
		{ID: 3, Timestamp: "2024-05-10T22:00:00Z"},
	}
	now := mustTime(t, "2024-05-10T12:00:00Z")
	got := analytics.SelectWindow(records, analytics.Today(), now, time.UTC)
	assert.Equal(t, []uint64{1, 3}, idsOf(got))
}

func TestSelectWindowLastNBoundary(t *testing.T) {
	now := mustTime(t, "2024-05-10T12:00:00Z")
	records := []analytics.Record{
		{ID: 1, Timestamp: "2024-05-03T12:00:00Z"},
		{ID: 2, Timestamp: "2024-05-03T11:59:59Z"},
		{ID: 3, Timestamp: "2024-05-11T00:00:00Z"},
	}
	got := analytics.SelectWindow(records, analytics.Last7Days(), now, time.UTC)
	assert.Equal(t, []uint64{1, 3}, idsOf(got))
}

func TestSelectWindowCustomRange(t *testing.T) {
	now := mustTime(t, "2024-06-01T00:00:00Z")
	records := []analytics.Record{
		{ID: 1, Timestamp: "2024-02-29T23:59:59Z"},
		{ID: 2, Timestamp: "2024-03-01T00:00:00Z"},
		{ID: 3, Timestamp: "2024-03-15T23:59:59Z"},
		{ID: 4, Timestamp: "2024-03-16T00:00:00Z"},
	}

	got := analytics.SelectWindow(records, analytics.CustomRange("2024-03-01", "2024-03-15"), now, time.UTC)
	assert.Equal(t, []uint64{2, 3}, idsOf(got))

	t.Run("missing bound behaves as all time", func(t *testing.T) {
		got := analytics.SelectWindow(records, analytics.CustomRange("2024-03-01", ""), now, time.UTC)
		assert.Len(t, got, len(records))
	})

	t.Run("garbage bound behaves as all time", func(t *testing.T) {
		got := analytics.SelectWindow(records, analytics.CustomRange("soon", "2024-03-15"), now, time.UTC)
		assert.Len(t, got, len(records))
	})
}

func TestSelectWindowPreservesOrder(t *testing.T) {
	now := mustTime(t, "2024-06-01T00:00:00Z")
	records := []analytics.Record{
		{ID: 5, Timestamp: "2024-05-30"},
		{ID: 2, Timestamp: "2024-05-31 08:00:00"},
		{ID: 9, Timestamp: "2024-05-29T08:00:00Z"},
	}
	got := analytics.SelectWindow(records, analytics.AllTime(), now, time.UTC)
	assert.Equal(t, []uint64{5, 2, 9}, idsOf(got))
}

func TestAggregateByDayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	records := []analytics.Record{
		{ID: 1, Timestamp: "2024-01-01T17:00:00Z", Likes: 2},
		{ID: 2, Timestamp: "2024-01-01T16:30:00Z", Likes: 3},
	}
	series := analytics.AggregateByDay(records, analytics.MetricLikes, loc)
	require.Len(t, series, 1)
	assert.Equal(t, "2024-01-02", series[0].Date)
	assert.Equal(t, int64(5), series[0].Value)
}
