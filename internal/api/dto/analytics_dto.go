package dto

// AnalyticsQuery 日期筛选，start/end 仅 custom 时生效
type AnalyticsQuery struct {
	Filter string `form:"filter"`
	Start  string `form:"start"`
	End    string `form:"end"`
	TopN   int    `form:"top_n" binding:"omitempty,min=1,max=100"`
}

// AnalyticsPostsQuery “查看更多”列表
type AnalyticsPostsQuery struct {
	AnalyticsQuery
	Search      string `form:"search"`
	ContentType string `form:"content_type" binding:"omitempty,oneof=all post video"`
	Sort        string `form:"sort" binding:"omitempty,oneof=recent high low"`
}

type OverviewDTO struct {
	Filter     string           `json:"filter"`
	Totals     map[string]int64 `json:"totals"`
	WindowSize int              `json:"window_size"`
	Skipped    int              `json:"skipped"`
}
