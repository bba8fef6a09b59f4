package search_test

import (
	"Kajoogram/internal/pkg/search"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

func testCatalog() *search.Catalog {
	return &search.Catalog{
		Videos: []search.Video{
			{ID: 1, Title: "Lofi beats to study", ChannelID: "c1", ChannelName: "Chill Hub", UploadedAt: "2 hours ago", Duration: 3600},
			{ID: 2, Title: "Go tutorial", ChannelID: "c2", ChannelName: "Gopher TV", UploadedAt: "3 days ago", Duration: 900},
			{ID: 3, Title: "Quick go tip", ChannelName: "Kajoo", UploadedAt: "2 weeks ago", Duration: 120},
			{ID: 4, Title: "Go concurrency", ChannelID: "c2", ChannelName: "Gopher TV", PublishedAt: ago(40 * 24 * time.Hour), Duration: 1500},
		},
		Shorts: []search.Video{
			{ID: 10, Title: "go in 60s", IsShort: true, Duration: 60, UploadedAt: "1 year ago"},
			{ID: 11, Title: "dance", IsShort: true, Duration: 30},
		},
		Channels: []search.Channel{{ID: "c1", Name: "Chill Hub"}, {ID: "c2", Name: "Gopher TV"}},
		Profiles: []search.Profile{
			{UserID: 7, Username: "gopher_anna"},
			{UserID: 7, Username: "gopher_anna"},
			{UserID: 8, Username: "bob"},
		},
	}
}

func videoIDs(vs []search.Video) []uint64 {
	ids := make([]uint64, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestSearchEmptyQuery(t *testing.T) {
	res := search.NewEngine().Search(testCatalog(), "   ", search.DefaultFilters(), now)
	assert.Empty(t, res.Videos)
	assert.Empty(t, res.Shorts)
	assert.Empty(t, res.Channels)
	assert.Empty(t, res.Profiles)
	assert.NotNil(t, res.Videos)
}

func TestSearchMatchesFields(t *testing.T) {
	res := search.NewEngine().Search(testCatalog(), "GO", search.DefaultFilters(), now)
	assert.Equal(t, []uint64{2, 3, 4}, videoIDs(res.Videos))
	assert.Equal(t, []uint64{10}, videoIDs(res.Shorts))
	assert.Len(t, res.Channels, 1)
	assert.Equal(t, "Gopher TV", res.Channels[0].Name)
	assert.Len(t, res.Profiles, 1)

	res = search.NewEngine().Search(testCatalog(), "chill", search.DefaultFilters(), now)
	assert.Equal(t, []uint64{1}, videoIDs(res.Videos))
}

func TestSearchFilters(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		filters search.Filters
		want    []uint64
	}{
		{"short", "go", search.Filters{Duration: search.DurationShort}, []uint64{3}},
		{"medium", "go", search.Filters{Duration: search.DurationMedium}, []uint64{2}},
		{"long", "", search.Filters{}, nil},
		{"long videos", "o", search.Filters{Duration: search.DurationLong}, []uint64{1, 4}},
		{"youtube", "go", search.Filters{Source: search.SourceYoutube}, []uint64{2, 4}},
		{"native", "go", search.Filters{Source: search.SourceNative}, []uint64{3}},
		{"today label", "o", search.Filters{Date: search.DateToday}, []uint64{1}},
		{"week label", "o", search.Filters{Date: search.DateWeek}, []uint64{1, 2}},
		{"month label and timestamp", "o", search.Filters{Date: search.DateMonth}, []uint64{2, 3}},
		{"year keeps everything", "o", search.Filters{Date: search.DateYear}, []uint64{1, 2, 3, 4}},
		{"conjunction", "go", search.Filters{Source: search.SourceYoutube, Duration: search.DurationLong}, []uint64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := search.NewEngine().Search(testCatalog(), tt.query, tt.filters, now)
			if tt.want == nil {
				assert.Empty(t, res.Videos)
				return
			}
			assert.Equal(t, tt.want, videoIDs(res.Videos))
		})
	}
}

func TestFiltersSkipShorts(t *testing.T) {
	f := search.Filters{Duration: search.DurationLong, Source: search.SourceYoutube, Date: search.DateToday}
	res := search.NewEngine().Search(testCatalog(), "go", f, now)
	assert.Equal(t, []uint64{10}, videoIDs(res.Shorts))
}

func TestFiltersNormalize(t *testing.T) {
	f := search.Filters{Date: "tomorrow", Duration: "", Source: search.SourceYoutube}.Normalize()
	assert.Equal(t, search.DateAny, f.Date)
	assert.Equal(t, search.DurationAny, f.Duration)
	assert.Equal(t, search.SourceYoutube, f.Source)
	assert.False(t, f.IsDefault())
	assert.True(t, search.Filters{}.IsDefault())
}

func TestPushHistory(t *testing.T) {
	var h []string
	for _, q := range []string{"go", "gopher", "dance", "lofi", "news", "music", "tech"} {
		h = search.PushHistory(h, q)
	}
	assert.Equal(t, []string{"tech", "music", "news", "lofi", "dance"}, h)

	h = search.PushHistory(h, "news")
	assert.Equal(t, []string{"news", "tech", "music", "lofi", "dance"}, h)

	assert.Equal(t, h, search.PushHistory(h, "ab"))
	assert.False(t, search.Recordable(" ab "))
	assert.True(t, search.Recordable("abc"))
}
