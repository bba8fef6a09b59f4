package dto

type ProductQuery struct {
	Category string `form:"category"`
	Label    string `form:"label"`
	Platform string `form:"platform"`
}

type ProductDTO struct {
	Title         string   `json:"title" binding:"required" validate:"max=255"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
	Image         string   `json:"image" binding:"required" validate:"max=512"`
	Images        []string `json:"images" validate:"max=10,dive,max=512"`
	Description   string   `json:"description"`
	AffiliateLink string   `json:"affiliate_link" validate:"omitempty,url"`
	Category      string   `json:"category" validate:"max=100"`
	Platform      string   `json:"platform" validate:"max=100"`
	Label         string   `json:"label" validate:"max=100"`
	TryOnEnabled  bool     `json:"try_on_enabled"`
}
