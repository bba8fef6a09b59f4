package model

import (
	"time"
)

type User struct {
	ID           uint64  `gorm:"primaryKey"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	ExternalID   *string `gorm:"type:varchar(128);uniqueIndex:idx_external_id"`
	Provider     string  `gorm:"type:varchar(20);not null;default:'local'"`
	Username     string  `gorm:"type:varchar(50);index:idx_username;not null"`
	PasswordHash *string `gorm:"type:varchar(255)"`
	Mobile       string  `gorm:"type:varchar(30)"`
	Bio          string  `gorm:"type:varchar(255)"`
	AvatarURL    string  `gorm:"type:varchar(512);default:'default_avatar.png'"`
	CoverURL     string  `gorm:"type:varchar(512)"`
	Location     string  `gorm:"type:varchar(255)"`
	IsBan        bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
