package model

import (
	"time"
)

// Privacy 帖子可见范围
const (
	PrivacyPublic           = "public"
	PrivacyFriendsOfFriends = "friends_of_friends"
	PrivacyFriends          = "friends"
	PrivacyPrivate          = "private"
)

const (
	PostTypeImage = "image"
	PostTypeVideo = "video"
)

type Post struct {
	ID          uint64   `gorm:"primaryKey" json:"id"`
	UserID      uint64   `gorm:"not null;index:idx_user_id" json:"user_id"`
	Type        string   `gorm:"type:varchar(10);not null;default:'image'" json:"type"`
	MediaURL    string   `gorm:"type:varchar(512);not null" json:"media_url"`
	Title       string   `gorm:"type:varchar(1024);not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Links       []string `gorm:"serializer:json;type:json" json:"links"`
	Privacy     string   `gorm:"type:varchar(20);not null;default:'public'" json:"privacy"`
	// Timestamp RFC3339 字符串，聚合时逐条解析，历史数据可能不合法
	Timestamp string    `gorm:"type:varchar(40);not null;index:idx_timestamp" json:"timestamp"`
	Views     int64     `gorm:"not null;default:0" json:"views"`
	Likes     int64     `gorm:"not null;default:0" json:"likes"`
	Comments  int64     `gorm:"not null;default:0" json:"comments"`
	Shares    int64     `gorm:"not null;default:0" json:"shares"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User        `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Media []PostMedia `gorm:"foreignKey:PostID;references:ID" json:"media"`
}

func (Post) TableName() string {
	return "posts"
}
