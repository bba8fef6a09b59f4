package search

import (
	"strings"
	"time"
)

// DateBucket 上传时间筛选
type DateBucket string

const (
	DateAny   DateBucket = "any"
	DateToday DateBucket = "today"
	DateWeek  DateBucket = "week"
	DateMonth DateBucket = "month"
	DateYear  DateBucket = "year"
)

// DurationBucket 时长筛选
type DurationBucket string

const (
	DurationAny    DurationBucket = "any"
	DurationShort  DurationBucket = "short"
	DurationMedium DurationBucket = "medium"
	DurationLong   DurationBucket = "long"
)

// Source 内容来源筛选
type Source string

const (
	SourceAny     Source = "any"
	SourceYoutube Source = "youtube"
	SourceNative  Source = "trykaro"
)

const (
	shortMaxSeconds  = 240
	mediumMaxSeconds = 1200
)

// Filters 三个互相独立的谓词，取交集
type Filters struct {
	Date     DateBucket     `json:"date" form:"date"`
	Duration DurationBucket `json:"duration" form:"duration"`
	Source   Source         `json:"type" form:"type"`
}

// DefaultFilters 全部为 any
func DefaultFilters() Filters {
	return Filters{Date: DateAny, Duration: DurationAny, Source: SourceAny}
}

// Normalize 空值或未知值回落为 any
func (f Filters) Normalize() Filters {
	switch f.Date {
	case DateToday, DateWeek, DateMonth, DateYear:
	default:
		f.Date = DateAny
	}
	switch f.Duration {
	case DurationShort, DurationMedium, DurationLong:
	default:
		f.Duration = DurationAny
	}
	switch f.Source {
	case SourceYoutube, SourceNative:
	default:
		f.Source = SourceAny
	}
	return f
}

// IsDefault 是否未设置任何筛选
func (f Filters) IsDefault() bool {
	return f.Normalize() == DefaultFilters()
}

func (f Filters) match(v Video, now time.Time) bool {
	switch f.Source {
	case SourceYoutube:
		if v.ChannelID == "" {
			return false
		}
	case SourceNative:
		if v.ChannelID != "" {
			return false
		}
	}

	switch f.Duration {
	case DurationShort:
		if v.Duration > shortMaxSeconds {
			return false
		}
	case DurationMedium:
		if v.Duration <= shortMaxSeconds || v.Duration > mediumMaxSeconds {
			return false
		}
	case DurationLong:
		if v.Duration <= mediumMaxSeconds {
			return false
		}
	}

	if f.Date == DateAny || f.Date == "" {
		return true
	}
	if v.PublishedAt != nil {
		return matchAge(f.Date, now.Sub(*v.PublishedAt))
	}
	return matchLabel(f.Date, v.UploadedAt)
}

func matchAge(b DateBucket, age time.Duration) bool {
	if age < 0 {
		age = 0
	}
	switch b {
	case DateToday:
		return age < 24*time.Hour
	case DateWeek:
		return age < 7*24*time.Hour
	case DateMonth:
		return age < 30*24*time.Hour
	case DateYear:
		return age < 365*24*time.Hour
	default:
		return true
	}
}

// matchLabel 旧数据没有发布时间，只能从 "3 days ago" 这类展示文案推断
func matchLabel(b DateBucket, label string) bool {
	l := strings.ToLower(label)
	has := func(units ...string) bool {
		for _, u := range units {
			if strings.Contains(l, u) {
				return true
			}
		}
		return false
	}
	switch b {
	case DateToday:
		return has("hour", "minute")
	case DateWeek:
		return has("day", "hour")
	case DateMonth:
		return has("week", "day")
	default:
		return true
	}
}
