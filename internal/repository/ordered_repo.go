package repository

import (
	"Kajoogram/internal/pkg/util"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Positioned 带 position 列的目录项
type Positioned[T any] interface {
	*T
	GetID() uint64
	SetPosition(int)
}

// OrderedRepo 分类、平台、标签与横幅共用的有序列表仓库
type OrderedRepo[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id uint64) (*T, error)
	Append(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uint64) (int64, error)
	Move(ctx context.Context, index int, dir util.Direction) (bool, error)
}

type OrderedRepoImpl[T any, PT Positioned[T]] struct {
	db *gorm.DB
}

func NewOrderedRepo[T any, PT Positioned[T]](db *gorm.DB) OrderedRepo[T] {
	return &OrderedRepoImpl[T, PT]{db: db}
}

func (s *OrderedRepoImpl[T, PT]) List(ctx context.Context) ([]*T, error) {
	return s.list(s.db.WithContext(ctx))
}

func (s *OrderedRepoImpl[T, PT]) Get(ctx context.Context, id uint64) (*T, error) {
	item := new(T)
	if err := s.db.WithContext(ctx).First(item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// Append 追加到末尾
func (s *OrderedRepoImpl[T, PT]) Append(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(new(T)).Select("COALESCE(MAX(position), -1)").Scan(&last).Error; err != nil {
			return err
		}
		PT(item).SetPosition(last + 1)
		return tx.Create(item).Error
	})
}

// Update 不修改 position
func (s *OrderedRepoImpl[T, PT]) Update(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Model(item).Select("*").Omit("id", "position", "created_at").Updates(item).Error
}

func (s *OrderedRepoImpl[T, PT]) Delete(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	return result.RowsAffected, result.Error
}

// Move 与相邻项交换位置，边界或不足两项时为空操作
func (s *OrderedRepoImpl[T, PT]) Move(ctx context.Context, index int, dir util.Direction) (bool, error) {
	moved := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.list(tx)
		if err != nil {
			return err
		}
		items, moved = util.Move(items, index, dir)
		if !moved {
			return nil
		}
		for i, item := range items {
			if err = tx.Model(new(T)).
				Where("id = ?", PT(item).GetID()).
				UpdateColumn("position", i).Error; err != nil {
				return err
			}
			PT(item).SetPosition(i)
		}
		return nil
	})
	return moved, err
}

func (s *OrderedRepoImpl[T, PT]) list(db *gorm.DB) ([]*T, error) {
	items := make([]*T, 0)
	if err := db.Order("position ASC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
