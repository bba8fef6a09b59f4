package dto

import "Kajoogram/internal/pkg/feed"

type FeedQuery struct {
	Topic  string `form:"topic"`
	Cursor string `form:"cursor"`
}

type FeedPageDTO struct {
	Topic      string               `json:"topic"`
	Page       int                  `json:"page"`
	Items      []feed.Item[PostDTO] `json:"items"`
	NextCursor string               `json:"next_cursor"`
}

type TopicsDTO struct {
	Topics []string `json:"topics"`
}
