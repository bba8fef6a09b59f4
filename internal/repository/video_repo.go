package repository

//go:generate mockgen -source=video_repo.go -destination=mocks/mock_video_repo.go -package=mocks

import (
	"Kajoogram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepo interface {
	GetVideos(ctx context.Context, shorts bool) ([]*model.Video, error)
	GetVideo(ctx context.Context, id uint64) (*model.Video, error)
	GetChannels(ctx context.Context) ([]*model.Channel, error)
	GetChannel(ctx context.Context, id string) (*model.Channel, error)
	CreateVideos(ctx context.Context, videos []*model.Video) error
	UpsertChannels(ctx context.Context, channels []*model.Channel) error
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db: db}
}

func (s *VideoRepoImpl) GetVideos(ctx context.Context, shorts bool) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	err := s.db.WithContext(ctx).
		Where("is_short = ?", shorts).
		Order("id ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *VideoRepoImpl) GetVideo(ctx context.Context, id uint64) (*model.Video, error) {
	var v model.Video
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *VideoRepoImpl) GetChannels(ctx context.Context) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

func (s *VideoRepoImpl) GetChannel(ctx context.Context, id string) (*model.Channel, error) {
	var c model.Channel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *VideoRepoImpl) CreateVideos(ctx context.Context, videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(videos, 100).Error
}

func (s *VideoRepoImpl) UpsertChannels(ctx context.Context, channels []*model.Channel) error {
	if len(channels) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(channels).Error
}
