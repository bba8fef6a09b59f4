package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/social"
	"Kajoogram/internal/repository"
	"context"
	"errors"

	"github.com/samber/lo"
)

// MaxDirectorySize 推荐列表扫描的用户数上限
const MaxDirectorySize = 1000

type FriendService interface {
	GetLists(ctx context.Context, ownerID uint64) (*dto.FriendListsDTO, error)
	GetUser(ctx context.Context, ownerID, userID uint64) (*dto.FriendUserDTO, error)
	SendRequest(ctx context.Context, ownerID, peerID uint64) (social.Status, error)
	AcceptRequest(ctx context.Context, ownerID, peerID uint64) (social.Status, error)
	DeleteRequest(ctx context.Context, ownerID, peerID uint64) (social.Status, error)
	RemoveFriend(ctx context.Context, ownerID, peerID uint64) (social.Status, error)
}

type friendServiceImpl struct {
	friendRepo repository.FriendshipRepo
	userRepo   repository.UserRepo
}

func NewFriendService(friendRepo repository.FriendshipRepo, userRepo repository.UserRepo) FriendService {
	return &friendServiceImpl{friendRepo: friendRepo, userRepo: userRepo}
}

// graph 从 friendships 行还原三个集合。
// 自己的行优先；其他用户指向自己的行只用于推导：对方的 sent 且自己无记录视为收到的请求，
// 自己已发送且对方已接受视为好友。推导不写回任何行。
func (s *friendServiceImpl) graph(ctx context.Context, ownerID uint64) (social.Graph, error) {
	rows, err := s.friendRepo.GetFriendships(ctx, ownerID)
	if err != nil {
		return social.Graph{}, err
	}
	reverse, err := s.friendRepo.GetIncoming(ctx, ownerID)
	if err != nil {
		return social.Graph{}, err
	}
	own := make(map[uint64]string, len(rows))
	for _, r := range rows {
		own[r.PeerID] = r.State
	}
	accepted := make(map[uint64]struct{})
	var derived []uint64
	for _, r := range reverse {
		if r.OwnerID == ownerID {
			continue
		}
		state, known := own[r.OwnerID]
		switch {
		case r.State == model.FriendStateSent && !known:
			derived = append(derived, r.OwnerID)
		case r.State == model.FriendStateFriend && state == model.FriendStateSent:
			accepted[r.OwnerID] = struct{}{}
		}
	}

	g := social.Graph{Owner: ownerID, Friends: []uint64{}, Incoming: []uint64{}, Sent: []uint64{}}
	for _, r := range rows {
		switch r.State {
		case model.FriendStateFriend:
			g.Friends = append(g.Friends, r.PeerID)
		case model.FriendStateIncoming:
			g.Incoming = append(g.Incoming, r.PeerID)
		case model.FriendStateSent:
			if _, ok := accepted[r.PeerID]; ok {
				g.Friends = append(g.Friends, r.PeerID)
				continue
			}
			g.Sent = append(g.Sent, r.PeerID)
		}
	}
	g.Incoming = append(g.Incoming, lo.Uniq(derived)...)
	return g, nil
}

func (s *friendServiceImpl) GetLists(ctx context.Context, ownerID uint64) (*dto.FriendListsDTO, error) {
	g, err := s.graph(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	directory, err := s.userRepo.ListUsers(ctx, MaxDirectorySize)
	if err != nil {
		return nil, err
	}
	suggestions := g.Suggestions(lo.Map(directory, func(u *model.User, _ int) uint64 { return u.ID }))

	ids := lo.Uniq(lo.Flatten([][]uint64{g.Friends, g.Incoming, g.Sent}))
	known, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(append(known, directory...), func(u *model.User) uint64 { return u.ID })
	resolve := func(list []uint64) []*dto.FriendUserDTO {
		out := make([]*dto.FriendUserDTO, 0, len(list))
		for _, id := range list {
			if u, ok := byID[id]; ok {
				out = append(out, toFriendUser(u, g.Status(id)))
			}
		}
		return out
	}
	return &dto.FriendListsDTO{
		Friends:     resolve(g.Friends),
		Incoming:    resolve(g.Incoming),
		Sent:        resolve(g.Sent),
		Suggestions: resolve(suggestions),
	}, nil
}

func (s *friendServiceImpl) GetUser(ctx context.Context, ownerID, userID uint64) (*dto.FriendUserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	g, err := s.graph(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toFriendUser(user, g.Status(userID)), nil
}

func (s *friendServiceImpl) SendRequest(ctx context.Context, ownerID, peerID uint64) (social.Status, error) {
	if err := s.ensureUser(ctx, peerID); err != nil {
		return "", err
	}
	g, err := s.graph(ctx, ownerID)
	if err != nil {
		return "", err
	}
	next, changed, err := g.SendRequest(peerID)
	if err != nil {
		return "", mapGraphError(err)
	}
	if changed {
		if err = s.friendRepo.SetState(ctx, ownerID, peerID, model.FriendStateSent); err != nil {
			return "", err
		}
	}
	return next.Status(peerID), nil
}

func (s *friendServiceImpl) AcceptRequest(ctx context.Context, ownerID, peerID uint64) (social.Status, error) {
	g, err := s.graph(ctx, ownerID)
	if err != nil {
		return "", err
	}
	next, err := g.AcceptRequest(peerID)
	if err != nil {
		return "", mapGraphError(err)
	}
	if err = s.friendRepo.SetState(ctx, ownerID, peerID, model.FriendStateFriend); err != nil {
		return "", err
	}
	return next.Status(peerID), nil
}

func (s *friendServiceImpl) DeleteRequest(ctx context.Context, ownerID, peerID uint64) (social.Status, error) {
	g, err := s.graph(ctx, ownerID)
	if err != nil {
		return "", err
	}
	next, changed := g.DeleteRequest(peerID)
	if changed {
		if err = s.friendRepo.DeleteFriendship(ctx, ownerID, peerID); err != nil {
			return "", err
		}
		// 拒绝即撤掉对方仍未处理的请求，否则下次读取会再次推导出来
		if err = s.friendRepo.CancelRequest(ctx, peerID, ownerID); err != nil {
			return "", err
		}
	}
	return next.Status(peerID), nil
}

func (s *friendServiceImpl) RemoveFriend(ctx context.Context, ownerID, peerID uint64) (social.Status, error) {
	g, err := s.graph(ctx, ownerID)
	if err != nil {
		return "", err
	}
	next, changed := g.RemoveFriend(peerID)
	if changed {
		if err = s.friendRepo.DeleteFriendship(ctx, ownerID, peerID); err != nil {
			return "", err
		}
	}
	return next.Status(peerID), nil
}

func (s *friendServiceImpl) ensureUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func mapGraphError(err error) error {
	switch {
	case errors.Is(err, social.ErrSelf):
		return ErrFriendSelf
	case errors.Is(err, social.ErrAlreadyConnected):
		return ErrFriendExist
	case errors.Is(err, social.ErrNoRequest):
		return ErrFriendRequestMissing
	}
	return err
}

func toFriendUser(u *model.User, status social.Status) *dto.FriendUserDTO {
	return &dto.FriendUserDTO{
		ID:           u.ID,
		Username:     u.Username,
		AvatarURL:    u.AvatarURL,
		Bio:          u.Bio,
		Location:     u.Location,
		FriendStatus: string(status),
	}
}
