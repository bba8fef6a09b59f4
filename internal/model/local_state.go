package model

// 以下类型不落库，整体镜像到 redis 快照

const (
	ReportPending  = "pending"
	ReportReviewed = "reviewed"
	ReportResolved = "resolved"
)

type Report struct {
	ID          string   `json:"id"`
	UserID      uint64   `json:"user_id"`
	Username    string   `json:"username"`
	UserAvatar  string   `json:"user_avatar"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
	Timestamp   string   `json:"timestamp"`
}

const (
	NotificationBroadcast = "broadcast"
	NotificationPersonal  = "personal"
)

type Notification struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	TargetUserID   uint64 `json:"target_user_id,omitempty"`
	TargetUserName string `json:"target_user_name,omitempty"`
	Message        string `json:"message"`
	Image          string `json:"image,omitempty"`
	Video          string `json:"video,omitempty"`
	Timestamp      string `json:"timestamp"`
	IsRead         bool   `json:"is_read"`
	// ReadBy 广播的已读用户
	ReadBy []uint64 `json:"read_by,omitempty"`
}

type ContentPage struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	LastUpdated string `json:"last_updated"`
}
