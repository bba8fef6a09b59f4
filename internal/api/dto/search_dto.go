package dto

import "Kajoogram/internal/pkg/search"

type SearchQuery struct {
	Q        string `form:"q"`
	Date     string `form:"date" binding:"omitempty,oneof=any today week month year"`
	Duration string `form:"duration" binding:"omitempty,oneof=any short medium long"`
	Type     string `form:"type" binding:"omitempty,oneof=any youtube trykaro"`
}

func (q *SearchQuery) Filters() search.Filters {
	f := search.Filters{
		Date:     search.DateBucket(q.Date),
		Duration: search.DurationBucket(q.Duration),
		Source:   search.Source(q.Type),
	}
	return f.Normalize()
}

// LiveSearchMessage 实时搜索客户端消息，filters 为空时视为修改查询
type LiveSearchMessage struct {
	Query   *string         `json:"query,omitempty"`
	Filters *search.Filters `json:"filters,omitempty"`
}

// LiveSearchResult 实时搜索推送
type LiveSearchResult struct {
	Query   string          `json:"query"`
	Filters search.Filters  `json:"filters"`
	Results *search.Results `json:"results"`
}
