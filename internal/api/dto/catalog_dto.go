package dto

type CategoryDTO struct {
	Name     string `json:"name" binding:"required" validate:"max=100"`
	Image    string `json:"image" validate:"omitempty,max=512"`
	IsActive *bool  `json:"is_active"`
}

type PlatformDTO struct {
	Name     string `json:"name" binding:"required" validate:"max=100"`
	Image    string `json:"image" validate:"omitempty,max=512"`
	Link     string `json:"link" validate:"omitempty,url"`
	IsActive *bool  `json:"is_active"`
}

type LabelDTO struct {
	Title    string `json:"title" binding:"required" validate:"max=100"`
	Subtitle string `json:"subtitle" validate:"omitempty,max=255"`
	Image    string `json:"image" validate:"omitempty,max=512"`
	IsActive *bool  `json:"is_active"`
}

type BannerDTO struct {
	Image string `json:"image" binding:"required" validate:"max=512"`
	Link  string `json:"link" validate:"omitempty,max=512"`
}

type ChannelPageDTO struct {
	Channel interface{} `json:"channel"`
	Videos  interface{} `json:"videos"`
	Shorts  interface{} `json:"shorts"`
}
