package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type ProductService interface {
	ListProducts(ctx context.Context, q *dto.ProductQuery) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductDTO) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint64, req *dto.ProductDTO) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepo
	media       MediaService
}

func NewProductService(productRepo repository.ProductRepo, media MediaService) ProductService {
	return &productServiceImpl{productRepo: productRepo, media: media}
}

func (s *productServiceImpl) ListProducts(ctx context.Context, q *dto.ProductQuery) ([]*model.Product, error) {
	return s.productRepo.ListProducts(ctx, repository.ProductQuery{
		Category: q.Category,
		Label:    q.Label,
		Platform: q.Platform,
	})
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	p, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductDTO) (*model.Product, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	p := &model.Product{}
	if err := copier.Copy(p, req); err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if err := s.productRepo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.media.Claim(ctx, append([]string{p.Image}, p.Images...)...)
	return p, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uint64, req *dto.ProductDTO) (*model.Product, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = copier.Copy(p, req); err != nil {
		return nil, err
	}
	p.ID = id
	if p.Images == nil {
		p.Images = []string{}
	}
	if err = s.productRepo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.media.Claim(ctx, append([]string{p.Image}, p.Images...)...)
	return p, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uint64) error {
	n, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
