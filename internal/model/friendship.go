package model

import "time"

// 好友关系状态，站在 OwnerID 的视角
const (
	FriendStateFriend   = "friend"
	FriendStateIncoming = "incoming"
	FriendStateSent     = "sent"
)

type Friendship struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	OwnerID   uint64    `gorm:"not null;uniqueIndex:idx_owner_peer" json:"owner_id"`
	PeerID    uint64    `gorm:"not null;uniqueIndex:idx_owner_peer;index:idx_peer" json:"peer_id"`
	State     string    `gorm:"type:varchar(10);not null" json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
