package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/snapshot"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	notificationsCollection = "notifications"
	broadcastTargetName     = "All Users"
)

type NotificationService interface {
	Send(ctx context.Context, req *dto.NotificationSendDTO) (*model.Notification, error)
	ListAll(ctx context.Context) []model.Notification
	// ListMine 广播加上发给自己的通知，IsRead 按当前用户计算
	ListMine(ctx context.Context, userID uint64) []model.Notification
	MarkRead(ctx context.Context, userID uint64, id string) error
}

type notificationServiceImpl struct {
	notifications *snapshot.Collection[model.Notification]
	userRepo      repository.UserRepo
	media         MediaService
	now           func() time.Time
}

func NewNotificationService(ctx context.Context, store *snapshot.Store, userRepo repository.UserRepo, media MediaService) (NotificationService, error) {
	c, err := snapshot.NewCollection[model.Notification](ctx, store, notificationsCollection, nil)
	if err != nil {
		return nil, err
	}
	return &notificationServiceImpl{notifications: c, userRepo: userRepo, media: media, now: time.Now}, nil
}

func (s *notificationServiceImpl) Send(ctx context.Context, req *dto.NotificationSendDTO) (*model.Notification, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	n := model.Notification{
		ID:        "notif-" + uuid.NewString(),
		Type:      req.Type,
		Message:   req.Message,
		Image:     req.Image,
		Video:     req.Video,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	switch req.Type {
	case model.NotificationPersonal:
		if req.TargetUserID == 0 {
			return nil, ErrTargetUserInvalid
		}
		target, err := s.userRepo.GetUserById(ctx, req.TargetUserID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, ErrTargetUserInvalid
		}
		n.TargetUserID = target.ID
		n.TargetUserName = target.Username
	case model.NotificationBroadcast:
		n.TargetUserName = broadcastTargetName
	default:
		return nil, ErrParamInvalid
	}

	err := s.notifications.Mutate(ctx, func(items []model.Notification) ([]model.Notification, error) {
		return append([]model.Notification{n}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	s.media.Claim(ctx, lo.Compact([]string{req.Image, req.Video})...)
	return &n, nil
}

func (s *notificationServiceImpl) ListAll(ctx context.Context) []model.Notification {
	return s.notifications.All()
}

func (s *notificationServiceImpl) ListMine(ctx context.Context, userID uint64) []model.Notification {
	mine := s.notifications.Filter(func(n model.Notification) bool { return visibleTo(n, userID) })
	for i := range mine {
		if mine[i].Type == model.NotificationBroadcast {
			mine[i].IsRead = slices.Contains(mine[i].ReadBy, userID)
		}
		mine[i].ReadBy = nil
	}
	return mine
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID uint64, id string) error {
	return s.notifications.Mutate(ctx, func(items []model.Notification) ([]model.Notification, error) {
		for i := range items {
			if items[i].ID != id || !visibleTo(items[i], userID) {
				continue
			}
			if items[i].Type == model.NotificationBroadcast {
				if !slices.Contains(items[i].ReadBy, userID) {
					items[i].ReadBy = append(slices.Clone(items[i].ReadBy), userID)
				}
			} else {
				items[i].IsRead = true
			}
			return items, nil
		}
		return nil, ErrNotificationNotFound
	})
}

func visibleTo(n model.Notification, userID uint64) bool {
	return n.Type == model.NotificationBroadcast || n.TargetUserID == userID
}
