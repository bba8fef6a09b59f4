package dto

type CreatePostDTO struct {
	Type        string   `json:"type" binding:"required,oneof=image video"`
	Media       []string `json:"media" validate:"min=1,max=9,dive,required,max=512"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Links       []string `json:"links" validate:"max=5,dive,url"`
	Privacy     string   `json:"privacy" validate:"oneof=public friends_of_friends friends private"`
}

type PostDTO struct {
	ID          uint64   `json:"id"`
	UserID      uint64   `json:"user_id"`
	Username    string   `json:"username,omitempty"`
	UserAvatar  string   `json:"user_avatar,omitempty"`
	Type        string   `json:"type"`
	MediaURL    string   `json:"media_url"`
	Media       []string `json:"media"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
	Privacy     string   `json:"privacy"`
	Timestamp   string   `json:"timestamp"`
	Views       int64    `json:"views"`
	Likes       int64    `json:"likes"`
	Comments    int64    `json:"comments"`
	Shares      int64    `json:"shares"`
}

// PostCountersDTO 互动后的最新计数
type PostCountersDTO struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}
