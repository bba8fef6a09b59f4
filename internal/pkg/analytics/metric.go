package analytics

import (
	"errors"
	"strings"
)

// Metric 互动指标
type Metric string

const (
	MetricViews    Metric = "views"
	MetricLikes    Metric = "likes"
	MetricComments Metric = "comments"
	MetricShares   Metric = "shares"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metrics 全部指标，按看板展示顺序
var Metrics = []Metric{MetricViews, MetricLikes, MetricComments, MetricShares}

// ParseMetric 解析指标名，大小写不敏感，空串默认为 views
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MetricViews, nil
	case MetricViews, MetricLikes, MetricComments, MetricShares:
		return m, nil
	default:
		return "", ErrUnknownMetric
	}
}

// Record 聚合器消费的帖子投影
type Record struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	MediaURL  string `json:"media_url"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Views     int64  `json:"views"`
	Likes     int64  `json:"likes"`
	Comments  int64  `json:"comments"`
	Shares    int64  `json:"shares"`
}

// Value 取出指定指标的计数
func (r Record) Value(m Metric) int64 {
	switch m {
	case MetricLikes:
		return r.Likes
	case MetricComments:
		return r.Comments
	case MetricShares:
		return r.Shares
	default:
		return r.Views
	}
}

func (r Record) counters() [4]int64 {
	return [4]int64{r.Views, r.Likes, r.Comments, r.Shares}
}
