package analytics

import (
	"strings"
	"time"
)

// FilterKind 时间窗口类型
type FilterKind string

const (
	FilterToday      FilterKind = "today"
	FilterLast7Days  FilterKind = "7d"
	FilterLast30Days FilterKind = "30d"
	FilterLast90Days FilterKind = "90d"
	FilterAllTime    FilterKind = "all"
	FilterCustom     FilterKind = "custom"
)

const day = 24 * time.Hour

// DateFilter 看板时间筛选，按值传递
type DateFilter struct {
	Kind  FilterKind `json:"kind"`
	Start string     `json:"start,omitempty"`
	End   string     `json:"end,omitempty"`
}

var filterAliases = map[string]FilterKind{
	"today":    FilterToday,
	"7d":       FilterLast7Days,
	"7 days":   FilterLast7Days,
	"30d":      FilterLast30Days,
	"30 days":  FilterLast30Days,
	"90d":      FilterLast90Days,
	"90 days":  FilterLast90Days,
	"all":      FilterAllTime,
	"all time": FilterAllTime,
	"custom":   FilterCustom,
}

// ParseFilter 解析前端传入的筛选项，空串默认最近 7 天
func ParseFilter(kind, start, end string) (DateFilter, bool) {
	k := strings.ToLower(strings.TrimSpace(kind))
	if k == "" {
		return DateFilter{Kind: FilterLast7Days}, true
	}
	fk, ok := filterAliases[k]
	if !ok {
		return DateFilter{}, false
	}
	f := DateFilter{Kind: fk}
	if fk == FilterCustom {
		f.Start, f.End = start, end
	}
	return f, true
}

// Today / Last7Days / ... 便捷构造
func Today() DateFilter      { return DateFilter{Kind: FilterToday} }
func Last7Days() DateFilter  { return DateFilter{Kind: FilterLast7Days} }
func Last30Days() DateFilter { return DateFilter{Kind: FilterLast30Days} }
func Last90Days() DateFilter { return DateFilter{Kind: FilterLast90Days} }
func AllTime() DateFilter    { return DateFilter{Kind: FilterAllTime} }

func CustomRange(start, end string) DateFilter {
	return DateFilter{Kind: FilterCustom, Start: start, End: end}
}

// ParseTimestamp 解析帖子时间戳，接受 RFC3339 及纯日期
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(time.DateTime, s, loc); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// window 返回筛选区间，nil 边界表示不设限
func (f DateFilter) window(now time.Time, loc *time.Location) (from, to *time.Time) {
	lastN := func(n int) (*time.Time, *time.Time) {
		t := now.Add(-time.Duration(n) * day)
		return &t, nil
	}
	switch f.Kind {
	case FilterLast7Days:
		return lastN(7)
	case FilterLast30Days:
		return lastN(30)
	case FilterLast90Days:
		return lastN(90)
	case FilterCustom:
		start, ok1 := ParseTimestamp(f.Start, loc)
		end, ok2 := ParseTimestamp(f.End, loc)
		if !ok1 || !ok2 {
			return nil, nil
		}
		start = midnight(start, loc)
		// 结束日包含当天 23:59:59
		end = midnight(end, loc).Add(day - time.Second)
		return &start, &end
	default:
		return nil, nil
	}
}

// SelectWindow 按时间窗口筛选帖子，保持输入顺序；时间戳或计数非法的记录被剔除
func SelectWindow(records []Record, f DateFilter, now time.Time, loc *time.Location) []Record {
	if loc == nil {
		loc = time.Local
	}
	from, to := f.window(now, loc)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		ts, ok := r.parse(loc)
		if !ok {
			continue
		}
		if f.Kind == FilterToday {
			if sameDay(ts, now, loc) {
				out = append(out, r)
			}
			continue
		}
		if from != nil && ts.Before(*from) {
			continue
		}
		if to != nil && ts.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Valid 判断记录能否参与聚合
func (r Record) Valid(loc *time.Location) bool {
	_, ok := r.parse(loc)
	return ok
}

func (r Record) parse(loc *time.Location) (time.Time, bool) {
	for _, v := range r.counters() {
		if v < 0 {
			return time.Time{}, false
		}
	}
	return ParseTimestamp(r.Timestamp, loc)
}
