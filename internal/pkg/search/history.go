package search

import "strings"

const (
	HistoryLimit    = 5
	historyMinChars = 2
)

// Recordable 长度超过 2 个字符的查询才进入历史
func Recordable(query string) bool {
	return len([]rune(strings.TrimSpace(query))) > historyMinChars
}

// PushHistory 新查询置顶、去重、截断到 HistoryLimit
func PushHistory(history []string, query string) []string {
	query = strings.TrimSpace(query)
	if !Recordable(query) {
		return history
	}
	out := make([]string, 0, HistoryLimit)
	out = append(out, query)
	for _, h := range history {
		if h == query {
			continue
		}
		if len(out) == HistoryLimit {
			break
		}
		out = append(out, h)
	}
	return out
}
