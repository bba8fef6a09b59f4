package dto

import "time"

type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username"`
	Mobile    string    `json:"mobile,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url"`
	CoverURL  string    `json:"cover_url,omitempty"`
	Location  string    `json:"location,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	Roles     []string  `json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserUpdateDTO 指针字段为空表示不修改
type UserUpdateDTO struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Mobile    *string `json:"mobile,omitempty" validate:"omitempty,max=30"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,max=512"`
	CoverURL  *string `json:"cover_url,omitempty" validate:"omitempty,max=512"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=255"`
}

type GrantRoleDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=USER ADMIN"`
}
