package analytics

import "time"

// Report 单指标分析结果
type Report struct {
	Filter     DateFilter `json:"filter"`
	Metric     Metric     `json:"metric"`
	Series     []DayPoint `json:"series"`
	Total      int64      `json:"total"`
	Top        []Record   `json:"top"`
	WindowSize int        `json:"window_size"`
	Skipped    int        `json:"skipped"`
}

// Build 组合 SelectWindow / AggregateByDay / TopN，生成看板所需的全部数据
func Build(records []Record, f DateFilter, m Metric, n int, now time.Time, loc *time.Location) *Report {
	if loc == nil {
		loc = time.Local
	}
	skipped := 0
	for _, r := range records {
		if !r.Valid(loc) {
			skipped++
		}
	}
	window := SelectWindow(records, f, now, loc)
	series := AggregateByDay(window, m, loc)
	return &Report{
		Filter:     f,
		Metric:     m,
		Series:     series,
		Total:      SeriesTotal(series),
		Top:        TopN(window, m, n),
		WindowSize: len(window),
		Skipped:    skipped,
	}
}
