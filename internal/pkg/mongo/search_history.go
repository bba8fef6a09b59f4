package mongo

import "time"

// SearchHistoryModel 每个用户一份文档，queries 新的在前
type SearchHistoryModel struct {
	UserID    uint64    `bson:"_id" json:"user_id"`
	Queries   []string  `bson:"queries" json:"queries"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
