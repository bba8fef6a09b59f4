package repository

//go:generate mockgen -source=friendship_repo.go -destination=mocks/mock_friendship_repo.go -package=mocks

import (
	"Kajoogram/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendshipRepo interface {
	GetFriendships(ctx context.Context, ownerID uint64) ([]*model.Friendship, error)
	GetIncoming(ctx context.Context, ownerID uint64) ([]*model.Friendship, error)
	SetState(ctx context.Context, ownerID, peerID uint64, state string) error
	DeleteFriendship(ctx context.Context, ownerID, peerID uint64) error
	CancelRequest(ctx context.Context, fromID, toID uint64) error
}

type FriendshipRepoImpl struct {
	db *gorm.DB
}

func NewFriendshipRepo(db *gorm.DB) FriendshipRepo {
	return &FriendshipRepoImpl{db: db}
}

// GetFriendships 按建立顺序返回
func (s *FriendshipRepoImpl) GetFriendships(ctx context.Context, ownerID uint64) ([]*model.Friendship, error) {
	rows := make([]*model.Friendship, 0)
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetIncoming 其他用户指向 ownerID 的 sent/friend 行，只读
func (s *FriendshipRepoImpl) GetIncoming(ctx context.Context, ownerID uint64) ([]*model.Friendship, error) {
	rows := make([]*model.Friendship, 0)
	err := s.db.WithContext(ctx).
		Where("peer_id = ? AND state IN ?", ownerID, []string{model.FriendStateSent, model.FriendStateFriend}).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *FriendshipRepoImpl) SetState(ctx context.Context, ownerID, peerID uint64, state string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "peer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).
		Create(&model.Friendship{OwnerID: ownerID, PeerID: peerID, State: state}).Error
}

func (s *FriendshipRepoImpl) DeleteFriendship(ctx context.Context, ownerID, peerID uint64) error {
	return s.db.WithContext(ctx).
		Where("owner_id = ? AND peer_id = ?", ownerID, peerID).
		Delete(&model.Friendship{}).Error
}

// CancelRequest 删除 fromID 发给 toID 且仍未处理的请求
func (s *FriendshipRepoImpl) CancelRequest(ctx context.Context, fromID, toID uint64) error {
	return s.db.WithContext(ctx).
		Where("owner_id = ? AND peer_id = ? AND state = ?", fromID, toID, model.FriendStateSent).
		Delete(&model.Friendship{}).Error
}
