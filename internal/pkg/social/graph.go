package social

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

// Status 对方相对于当前用户的好友状态
type Status string

const (
	StatusFriend          Status = "friend"
	StatusRequestReceived Status = "request_received"
	StatusRequestSent     Status = "request_sent"
	StatusNone            Status = "none"
)

var (
	ErrSelf             = errors.New("cannot befriend yourself")
	ErrAlreadyConnected = errors.New("already a friend or has a pending request")
	ErrNoRequest        = errors.New("no incoming request from this user")
)

// Graph 单视角好友关系：三个互不相交的有序 id 集合
type Graph struct {
	Owner    uint64   `json:"owner"`
	Friends  []uint64 `json:"friends"`
	Incoming []uint64 `json:"incoming"`
	Sent     []uint64 `json:"sent"`
}

// Status 由三个集合推导，不单独存储
func (g Graph) Status(id uint64) Status {
	switch {
	case slices.Contains(g.Friends, id):
		return StatusFriend
	case slices.Contains(g.Incoming, id):
		return StatusRequestReceived
	case slices.Contains(g.Sent, id):
		return StatusRequestSent
	default:
		return StatusNone
	}
}

// Suggestions 目录中去掉自己以及三个集合内的用户，保持目录顺序
func (g Graph) Suggestions(directory []uint64) []uint64 {
	known := lo.Union(g.Friends, g.Incoming, g.Sent)
	return lo.Filter(directory, func(id uint64, _ int) bool {
		return id != g.Owner && !slices.Contains(known, id)
	})
}

// SendRequest none -> sent；已发送时幂等
func (g Graph) SendRequest(id uint64) (Graph, bool, error) {
	if id == g.Owner {
		return g, false, ErrSelf
	}
	switch g.Status(id) {
	case StatusRequestSent:
		return g, false, nil
	case StatusFriend, StatusRequestReceived:
		return g, false, ErrAlreadyConnected
	}
	g.Sent = append(slices.Clone(g.Sent), id)
	return g, true, nil
}

// AcceptRequest incoming -> friends
func (g Graph) AcceptRequest(id uint64) (Graph, error) {
	if !slices.Contains(g.Incoming, id) {
		return g, ErrNoRequest
	}
	g.Incoming = without(g.Incoming, id)
	g.Friends = append(slices.Clone(g.Friends), id)
	return g, nil
}

// DeleteRequest 删除收到的请求，幂等
func (g Graph) DeleteRequest(id uint64) (Graph, bool) {
	if !slices.Contains(g.Incoming, id) {
		return g, false
	}
	g.Incoming = without(g.Incoming, id)
	return g, true
}

// RemoveFriend 删除好友，幂等
func (g Graph) RemoveFriend(id uint64) (Graph, bool) {
	if !slices.Contains(g.Friends, id) {
		return g, false
	}
	g.Friends = without(g.Friends, id)
	return g, true
}

func without(ids []uint64, id uint64) []uint64 {
	return lo.Filter(ids, func(x uint64, _ int) bool { return x != id })
}
