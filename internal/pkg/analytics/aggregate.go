package analytics

import (
	"sort"
	"strings"
	"time"
)

// DefaultTopN 排行榜默认条数
const DefaultTopN = 5

// DayPoint 按天聚合后的趋势点
type DayPoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// AggregateByDay 按自然日分桶求和，日期升序；无数据的日期不补零
func AggregateByDay(records []Record, m Metric, loc *time.Location) []DayPoint {
	if loc == nil {
		loc = time.Local
	}
	sums := make(map[time.Time]int64)
	for _, r := range records {
		ts, ok := r.parse(loc)
		if !ok {
			continue
		}
		sums[midnight(ts, loc)] += r.Value(m)
	}

	days := make([]time.Time, 0, len(sums))
	for d := range sums {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]DayPoint, 0, len(days))
	for _, d := range days {
		series = append(series, DayPoint{Date: d.Format(time.DateOnly), Value: sums[d]})
	}
	return series
}

// SeriesTotal 趋势序列合计
func SeriesTotal(series []DayPoint) int64 {
	var total int64
	for _, p := range series {
		total += p.Value
	}
	return total
}

// GrandTotal 窗口内指标合计，非法记录不计入
func GrandTotal(records []Record, m Metric) int64 {
	var total int64
	for _, r := range records {
		if !r.Valid(time.UTC) {
			continue
		}
		total += r.Value(m)
	}
	return total
}

// Totals 四项指标合计，用于看板总览
func Totals(records []Record) map[Metric]int64 {
	totals := make(map[Metric]int64, len(Metrics))
	for _, m := range Metrics {
		totals[m] = GrandTotal(records, m)
	}
	return totals
}

// TopN 按指标降序取前 n 条，n<=0 时取默认值；稳定排序，平局保持输入顺序
func TopN(records []Record, m Metric, n int) []Record {
	if n <= 0 {
		n = DefaultTopN
	}
	ranked := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Valid(time.UTC) {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value(m) > ranked[j].Value(m)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SortOrder 明细列表排序方式
type SortOrder string

const (
	SortRecent SortOrder = "recent"
	SortHigh   SortOrder = "high"
	SortLow    SortOrder = "low"
)

// ContentType 明细列表内容类型
type ContentType string

const (
	ContentAll   ContentType = "all"
	ContentPost  ContentType = "post"
	ContentVideo ContentType = "video"
)

// ListOptions 明细列表选项
type ListOptions struct {
	Search      string
	ContentType ContentType
	Sort        SortOrder
}

// ListPosts 窗口内帖子明细：标题搜索、类型筛选、排序
func ListPosts(records []Record, m Metric, opts ListOptions, loc *time.Location) []Record {
	if loc == nil {
		loc = time.Local
	}
	q := strings.ToLower(strings.TrimSpace(opts.Search))

	type item struct {
		rec Record
		ts  time.Time
	}
	items := make([]item, 0, len(records))
	for _, r := range records {
		ts, ok := r.parse(loc)
		if !ok {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Title), q) {
			continue
		}
		switch opts.ContentType {
		case ContentPost:
			if r.Type != "image" {
				continue
			}
		case ContentVideo:
			if r.Type != "video" {
				continue
			}
		}
		items = append(items, item{rec: r, ts: ts})
	}

	sort.SliceStable(items, func(i, j int) bool {
		switch opts.Sort {
		case SortHigh:
			return items[i].rec.Value(m) > items[j].rec.Value(m)
		case SortLow:
			return items[i].rec.Value(m) < items[j].rec.Value(m)
		default:
			return items[i].ts.After(items[j].ts)
		}
	})

	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}
