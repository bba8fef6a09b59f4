package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
	log "log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	MaxTitleWords       = 100
	MaxDescriptionWords = 1500
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	GetUserPosts(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error
	// Act 浏览、点赞、评论、分享计数 +1
	Act(ctx context.Context, postID uint64, counter repository.Counter) (*dto.PostCountersDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	media    MediaService
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepo, media MediaService) PostService {
	return &postServiceImpl{postRepo: postRepo, media: media, now: time.Now}
}

// validatePost 显式规则先于结构体校验
func validatePost(req *dto.CreatePostDTO) error {
	req.Media = lo.Filter(req.Media, func(m string, _ int) bool { return strings.TrimSpace(m) != "" })
	if len(req.Media) == 0 {
		return ErrPostMediaRequired
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return ErrPostTitleRequired
	}
	if util.WordCount(req.Title) > MaxTitleWords {
		return ErrPostTitleTooLong
	}
	if util.WordCount(req.Description) > MaxDescriptionWords {
		return ErrPostDescTooLong
	}
	if req.Privacy == "" {
		req.Privacy = model.PrivacyPublic
	}
	switch req.Privacy {
	case model.PrivacyPublic, model.PrivacyFriendsOfFriends, model.PrivacyFriends, model.PrivacyPrivate:
	default:
		return ErrPostPrivacyInvalid
	}
	if req.Type == "" {
		req.Type = model.PostTypeImage
	}
	if err := util.ValidateDTO(req); err != nil {
		return ErrParamInvalid
	}
	return nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if err := validatePost(req); err != nil {
		return nil, err
	}
	post := &model.Post{
		UserID:      userID,
		Type:        req.Type,
		MediaURL:    req.Media[0],
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Links:       lo.Compact(req.Links),
		Privacy:     req.Privacy,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}
	for _, url := range req.Media {
		post.Media = append(post.Media, model.PostMedia{
			MediaURL: url,
			FileType: fileType(url, req.Type),
		})
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	s.media.Claim(ctx, req.Media...)
	log.InfoContext(ctx, "post created", "post_id", post.ID, "user_id", userID, "media", len(req.Media))
	return toPostDTO(post), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) GetUserPosts(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(posts, func(p *model.Post, _ int) *dto.PostDTO { return toPostDTO(p) }), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID && !isAdmin {
		return ForbiddenError
	}
	n, err := s.postRepo.DeletePost(ctx, postID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *postServiceImpl) Act(ctx context.Context, postID uint64, counter repository.Counter) (*dto.PostCountersDTO, error) {
	if !counter.Valid() {
		return nil, ErrParamInvalid
	}
	n, err := s.postRepo.Increment(ctx, postID, counter)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return &dto.PostCountersDTO{
		Views:    post.Views,
		Likes:    post.Likes,
		Comments: post.Comments,
		Shares:   post.Shares,
	}, nil
}

func fileType(url, postType string) string {
	if t := mime.TypeByExtension(path.Ext(url)); t != "" {
		return t
	}
	return postType
}

func toPostDTO(p *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		Type:        p.Type,
		MediaURL:    p.MediaURL,
		Media:       lo.Map(p.Media, func(m model.PostMedia, _ int) string { return m.MediaURL }),
		Title:       p.Title,
		Description: p.Description,
		Links:       p.Links,
		Privacy:     p.Privacy,
		Timestamp:   p.Timestamp,
		Views:       p.Views,
		Likes:       p.Likes,
		Comments:    p.Comments,
		Shares:      p.Shares,
	}
	if out.Links == nil {
		out.Links = []string{}
	}
	if p.User.ID != 0 {
		out.Username = p.User.Username
		out.UserAvatar = p.User.AvatarURL
	}
	return out
}
