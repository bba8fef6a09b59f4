package model

import "time"

// Ordered 可手动排序的目录项
type Ordered struct {
	Position int `gorm:"not null;default:0;index" json:"position"`
}

func (o *Ordered) SetPosition(p int) { o.Position = p }

type Category struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Image    string `gorm:"type:varchar(512)" json:"image"`
	IsActive bool   `gorm:"type:tinyint(1);not null" json:"is_active"`
	Ordered
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string { return "categories" }
func (c *Category) GetID() uint64  { return c.ID }

type Platform struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Image    string `gorm:"type:varchar(512)" json:"image"`
	Link     string `gorm:"type:varchar(512)" json:"link"`
	IsActive bool   `gorm:"type:tinyint(1);not null" json:"is_active"`
	Ordered
	CreatedAt time.Time `json:"created_at"`
}

func (Platform) TableName() string { return "platforms" }
func (p *Platform) GetID() uint64  { return p.ID }

type Label struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Subtitle string `gorm:"type:varchar(255)" json:"subtitle"`
	Image    string `gorm:"type:varchar(512)" json:"image"`
	IsActive bool   `gorm:"type:tinyint(1);not null" json:"is_active"`
	Ordered
	CreatedAt time.Time `json:"created_at"`
}

func (Label) TableName() string { return "labels" }
func (l *Label) GetID() uint64  { return l.ID }

type Banner struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Image string `gorm:"type:varchar(512);not null" json:"image"`
	Link  string `gorm:"type:varchar(512)" json:"link"`
	Ordered
	CreatedAt time.Time `json:"created_at"`
}

func (Banner) TableName() string { return "banners" }
func (b *Banner) GetID() uint64  { return b.ID }

type Product struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice *float64  `gorm:"type:decimal(10,2)" json:"original_price,omitempty"`
	Image         string    `gorm:"type:varchar(512);not null" json:"image"`
	Images        []string  `gorm:"serializer:json;type:json" json:"images"`
	Description   string    `gorm:"type:text" json:"description"`
	AffiliateLink string    `gorm:"type:varchar(1024)" json:"affiliate_link"`
	Category      string    `gorm:"type:varchar(100);index" json:"category"`
	Platform      string    `gorm:"type:varchar(100);index" json:"platform"`
	Label         string    `gorm:"type:varchar(100);index" json:"label"`
	TryOnEnabled  bool      `gorm:"type:tinyint(1);not null;default:0" json:"try_on_enabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
