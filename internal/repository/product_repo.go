package repository

//go:generate mockgen -source=product_repo.go -destination=mocks/mock_product_repo.go -package=mocks

import (
	"Kajoogram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ProductQuery 空字段不参与过滤
type ProductQuery struct {
	Category string
	Label    string
	Platform string
}

type ProductRepo interface {
	ListProducts(ctx context.Context, q ProductQuery) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id uint64) (int64, error)
}

type ProductRepoImpl struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &ProductRepoImpl{db: db}
}

// ListProducts 新增的排在最前
func (s *ProductRepoImpl) ListProducts(ctx context.Context, q ProductQuery) ([]*model.Product, error) {
	products := make([]*model.Product, 0)
	db := s.db.WithContext(ctx).Order("id DESC")
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Label != "" {
		db = db.Where("label = ?", q.Label)
	}
	if q.Platform != "" {
		db = db.Where("platform = ?", q.Platform)
	}
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductRepoImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProductRepoImpl) CreateProduct(ctx context.Context, p *model.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ProductRepoImpl) UpdateProduct(ctx context.Context, p *model.Product) error {
	return s.db.WithContext(ctx).Omit("CreatedAt").Save(p).Error
}

func (s *ProductRepoImpl) DeleteProduct(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Product{}, id)
	return result.RowsAffected, result.Error
}
