package dto

type ReportCreateDTO struct {
	Subject     string   `json:"subject" binding:"required" validate:"max=200"`
	Description string   `json:"description" binding:"required" validate:"max=5000"`
	Images      []string `json:"images" validate:"max=5,dive,max=512"`
}

type ReportStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=reviewed resolved"`
}

type NotificationSendDTO struct {
	Type         string `json:"type" binding:"required,oneof=broadcast personal"`
	TargetUserID uint64 `json:"target_user_id"`
	Message      string `json:"message" binding:"required" validate:"max=2000"`
	Image        string `json:"image" validate:"omitempty,max=512"`
	Video        string `json:"video" validate:"omitempty,max=512"`
}

type PageUpdateDTO struct {
	Title   string `json:"title" binding:"required" validate:"max=200"`
	Content string `json:"content" binding:"required"`
}
