package repository

//go:generate mockgen -source=post_repo.go -destination=mocks/mock_post_repo.go -package=mocks

import (
	"Kajoogram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Counter 可原子自增的帖子计数列
type Counter string

const (
	CounterViews    Counter = "views"
	CounterLikes    Counter = "likes"
	CounterComments Counter = "comments"
	CounterShares   Counter = "shares"
)

var ErrUnknownCounter = errors.New("unknown counter")

func (c Counter) Valid() bool {
	switch c {
	case CounterViews, CounterLikes, CounterComments, CounterShares:
		return true
	}
	return false
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByUser(ctx context.Context, userID uint64) ([]*model.Post, error)
	GetFeedPosts(ctx context.Context, limit int) ([]*model.Post, error)
	DeletePost(ctx context.Context, id uint64) (int64, error)
	Increment(ctx context.Context, id uint64, counter Counter) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// CreatePost 帖子与媒体在同一事务内写入
func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		media := post.Media
		post.Media = nil
		if err := tx.Omit("User").Create(post).Error; err != nil {
			return err
		}
		if len(media) == 0 {
			return nil
		}
		for i := range media {
			media[i].PostID = post.ID
			media[i].SortOrder = int8(i)
		}
		if err := tx.Create(&media).Error; err != nil {
			return err
		}
		post.Media = media
		return nil
	})
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByUser 按创建顺序倒序
func (s PostRepoImpl) GetPostsByUser(ctx context.Context, userID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) GetFeedPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	db := s.db.WithContext(ctx).
		Preload("User").
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("is_deleted = ? AND privacy = ?", false, model.PrivacyPublic).
		Order("id DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) DeletePost(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

// Increment 单条 UPDATE 自增，返回受影响行数
func (s PostRepoImpl) Increment(ctx context.Context, id uint64, counter Counter) (int64, error) {
	if !counter.Valid() {
		return 0, ErrUnknownCounter
	}
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		UpdateColumn(string(counter), gorm.Expr(string(counter)+" + ?", 1))
	return result.RowsAffected, result.Error
}
