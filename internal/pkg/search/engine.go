package search

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Video 长视频或短视频
type Video struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Thumbnail     string     `json:"thumbnail"`
	ChannelID     string     `json:"channel_id"`
	ChannelName   string     `json:"channel_name"`
	ChannelAvatar string     `json:"channel_avatar"`
	Views         string     `json:"views"`
	UploadedAt    string     `json:"uploaded_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Category      string     `json:"category"`
	Duration      int        `json:"duration"`
	IsShort       bool       `json:"is_short"`
}

// Channel 外部频道
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Subscribers string `json:"subscribers"`
}

// Profile 站内用户
type Profile struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Catalog 一次搜索的数据源
type Catalog struct {
	Videos   []Video
	Shorts   []Video
	Channels []Channel
	Profiles []Profile
}

// Results 搜索结果，按标签页分组
type Results struct {
	Videos   []Video   `json:"videos"`
	Shorts   []Video   `json:"shorts"`
	Channels []Channel `json:"channels"`
	Profiles []Profile `json:"profiles"`
}

func emptyResults() *Results {
	return &Results{
		Videos:   []Video{},
		Shorts:   []Video{},
		Channels: []Channel{},
		Profiles: []Profile{},
	}
}

// Engine 搜索引擎，无状态
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Search 大小写不敏感的子串匹配；筛选条件只作用于长视频
func (e *Engine) Search(catalog *Catalog, query string, filters Filters, now time.Time) *Results {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || catalog == nil {
		return emptyResults()
	}
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}
	filters = filters.Normalize()

	res := emptyResults()
	res.Videos = lo.Filter(catalog.Videos, func(v Video, _ int) bool {
		return (contains(v.Title) || contains(v.ChannelName)) && filters.match(v, now)
	})
	res.Shorts = lo.Filter(catalog.Shorts, func(v Video, _ int) bool {
		return contains(v.Title)
	})
	res.Channels = lo.Filter(catalog.Channels, func(c Channel, _ int) bool {
		return contains(c.Name)
	})
	res.Profiles = lo.UniqBy(lo.Filter(catalog.Profiles, func(p Profile, _ int) bool {
		return contains(p.Username)
	}), func(p Profile) uint64 {
		return p.UserID
	})
	return res
}
