package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/search"
	"Kajoogram/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
)

// CatalogTTL 搜索与信息流共用的目录快照有效期
const CatalogTTL = time.Minute

type VideoService interface {
	// Catalog 视频、短视频、频道与用户目录的只读快照
	Catalog(ctx context.Context) (*search.Catalog, error)
	GetVideo(ctx context.Context, id uint64) (*model.Video, error)
	GetChannelPage(ctx context.Context, id string) (*dto.ChannelPageDTO, error)
	Invalidate()
}

type videoServiceImpl struct {
	videoRepo repository.VideoRepo
	userRepo  repository.UserRepo
	now       func() time.Time

	mu       sync.Mutex
	cached   *search.Catalog
	cachedAt time.Time
}

func NewVideoService(videoRepo repository.VideoRepo, userRepo repository.UserRepo) VideoService {
	return &videoServiceImpl{videoRepo: videoRepo, userRepo: userRepo, now: time.Now}
}

func (s *videoServiceImpl) Catalog(ctx context.Context) (*search.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && s.now().Sub(s.cachedAt) < CatalogTTL {
		return s.cached, nil
	}

	videos, err := s.videoRepo.GetVideos(ctx, false)
	if err != nil {
		return nil, err
	}
	shorts, err := s.videoRepo.GetVideos(ctx, true)
	if err != nil {
		return nil, err
	}
	channels, err := s.videoRepo.GetChannels(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx, MaxDirectorySize)
	if err != nil {
		return nil, err
	}
	s.cached = &search.Catalog{
		Videos: lo.Map(videos, toSearchVideo),
		Shorts: lo.Map(shorts, toSearchVideo),
		Channels: lo.Map(channels, func(c *model.Channel, _ int) search.Channel {
			return search.Channel{ID: c.ID, Name: c.Name, Avatar: c.Avatar, Subscribers: c.Subscribers}
		}),
		Profiles: lo.Map(users, func(u *model.User, _ int) search.Profile {
			return search.Profile{UserID: u.ID, Username: u.Username, Avatar: u.AvatarURL}
		}),
	}
	s.cachedAt = s.now()
	return s.cached, nil
}

func (s *videoServiceImpl) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *videoServiceImpl) GetVideo(ctx context.Context, id uint64) (*model.Video, error) {
	v, err := s.videoRepo.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVideoNotFound
	}
	return v, nil
}

func (s *videoServiceImpl) GetChannelPage(ctx context.Context, id string) (*dto.ChannelPageDTO, error) {
	ch, err := s.videoRepo.GetChannel(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, ErrChannelNotFound
	}
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	own := func(v search.Video, _ int) bool { return v.ChannelID == id }
	return &dto.ChannelPageDTO{
		Channel: ch,
		Videos:  lo.Filter(catalog.Videos, own),
		Shorts:  lo.Filter(catalog.Shorts, own),
	}, nil
}

func toSearchVideo(v *model.Video, _ int) search.Video {
	return search.Video{
		ID:            v.ID,
		Title:         v.Title,
		Thumbnail:     v.Thumbnail,
		ChannelID:     v.ChannelID,
		ChannelName:   v.ChannelName,
		ChannelAvatar: v.ChannelAvatar,
		Views:         v.Views,
		UploadedAt:    v.UploadedAt,
		PublishedAt:   v.PublishedAt,
		Category:      v.Category,
		Duration:      v.Duration,
		IsShort:       v.IsShort,
	}
}
