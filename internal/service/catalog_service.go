package service

import (
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
)

// CatalogService 分类、平台、标签、横幅的增删改与上下移动
type CatalogService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id uint64) (*T, error)
	Add(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id uint64, apply func(*T)) (*T, error)
	Delete(ctx context.Context, id uint64) error
	// Move 边界或不足两项时为空操作，返回移动后的完整列表
	Move(ctx context.Context, index int, dir util.Direction) ([]*T, error)
}

type catalogServiceImpl[T any] struct {
	repo  repository.OrderedRepo[T]
	media MediaService
	image func(*T) string
}

// NewCatalogService image 返回记录引用的上传文件，保存成功后登记为已使用
func NewCatalogService[T any](repo repository.OrderedRepo[T], media MediaService, image func(*T) string) CatalogService[T] {
	return &catalogServiceImpl[T]{repo: repo, media: media, image: image}
}

func (s *catalogServiceImpl[T]) List(ctx context.Context) ([]*T, error) {
	return s.repo.List(ctx)
}

func (s *catalogServiceImpl[T]) Get(ctx context.Context, id uint64) (*T, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCatalogItemNotFound
	}
	return item, nil
}

// Add 追加到列表末尾
func (s *catalogServiceImpl[T]) Add(ctx context.Context, item *T) (*T, error) {
	if err := s.repo.Append(ctx, item); err != nil {
		return nil, err
	}
	s.media.Claim(ctx, s.image(item))
	return item, nil
}

func (s *catalogServiceImpl[T]) Update(ctx context.Context, id uint64, apply func(*T)) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(item)
	if err = s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.media.Claim(ctx, s.image(item))
	return item, nil
}

func (s *catalogServiceImpl[T]) Delete(ctx context.Context, id uint64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCatalogItemNotFound
	}
	return nil
}

func (s *catalogServiceImpl[T]) Move(ctx context.Context, index int, dir util.Direction) ([]*T, error) {
	if dir != util.Up && dir != util.Down {
		return nil, ErrParamInvalid
	}
	if _, err := s.repo.Move(ctx, index, dir); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}
