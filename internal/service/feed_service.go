package service

import (
	"Kajoogram/internal/api/config"
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/feed"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MaxFeedPosts 发现流首页最多置顶的帖子数
const MaxFeedPosts = 50

type FeedService interface {
	Discover(ctx context.Context, q *dto.FeedQuery) (*dto.FeedPageDTO, error)
}

type feedServiceImpl struct {
	postRepo repository.PostRepo
	videos   VideoService
	opts     feed.Options
}

func NewFeedService(postRepo repository.PostRepo, videos VideoService, cfg config.FeedConfig) FeedService {
	return &feedServiceImpl{
		postRepo: postRepo,
		videos:   videos,
		opts: feed.Options{
			PageSize:   cfg.PageSize,
			ShelfEvery: cfg.ShelfEvery,
			ShelfSize:  cfg.ShelfSize,
			MinPool:    cfg.MinPool,
		},
	}
}

// Discover 同一游标会话内种子固定，相同页码得到相同结果
func (s *feedServiceImpl) Discover(ctx context.Context, q *dto.FeedQuery) (*dto.FeedPageDTO, error) {
	cursor, err := util.DecodeCursor(q.Cursor)
	if err != nil {
		return nil, ErrCursorInvalid
	}
	if cursor.Session == "" {
		cursor = util.FeedCursor{Session: uuid.NewString(), Page: 1}
	}
	topic := strings.TrimSpace(q.Topic)
	if topic == "" {
		topic = feed.TopicAll
	}

	catalog, err := s.videos.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	var posts []dto.PostDTO
	if cursor.Page == 1 && strings.EqualFold(topic, feed.TopicAll) {
		rows, err := s.postRepo.GetFeedPosts(ctx, MaxFeedPosts)
		if err != nil {
			return nil, err
		}
		posts = lo.Map(rows, func(p *model.Post, _ int) dto.PostDTO { return *toPostDTO(p) })
	}

	opts := s.opts
	opts.Page = cursor.Page
	rng := rand.New(rand.NewPCG(util.HashSessionID(cursor.Session), uint64(cursor.Page)))
	items := feed.Compose(posts, catalog.Videos, catalog.Shorts, topic, rng, opts)

	return &dto.FeedPageDTO{
		Topic:      topic,
		Page:       cursor.Page,
		Items:      items,
		NextCursor: util.EncodeCursor(util.FeedCursor{Session: cursor.Session, Page: cursor.Page + 1}),
	}, nil
}
