package model

import "time"

// Video 外部视频目录，长视频与短视频共用一张表
type Video struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Thumbnail     string     `gorm:"type:varchar(512)" json:"thumbnail"`
	ChannelID     string     `gorm:"type:varchar(64);index" json:"channel_id"`
	ChannelName   string     `gorm:"type:varchar(100)" json:"channel_name"`
	ChannelAvatar string     `gorm:"type:varchar(512)" json:"channel_avatar"`
	Views         string     `gorm:"type:varchar(32)" json:"views"`
	UploadedAt    string     `gorm:"type:varchar(64)" json:"uploaded_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Description   string     `gorm:"type:text" json:"description"`
	Category      string     `gorm:"type:varchar(32);index" json:"category"`
	IsShort       bool       `gorm:"type:tinyint(1);not null;default:0;index" json:"is_short"`
	Duration      int        `gorm:"not null;default:0" json:"duration"`
	LocalLikes    int64      `gorm:"not null;default:0" json:"local_likes"`
	LocalComments int64      `gorm:"not null;default:0" json:"local_comments"`
	LocalShares   int64      `gorm:"not null;default:0" json:"local_shares"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (Video) TableName() string { return "videos" }

type Channel struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Avatar      string `gorm:"type:varchar(512)" json:"avatar"`
	Banner      string `gorm:"type:varchar(512)" json:"banner"`
	Subscribers string `gorm:"type:varchar(32)" json:"subscribers"`
	Description string `gorm:"type:text" json:"description"`
	IsVerified  bool   `gorm:"type:tinyint(1);not null;default:0" json:"is_verified"`
}

func (Channel) TableName() string { return "channels" }
