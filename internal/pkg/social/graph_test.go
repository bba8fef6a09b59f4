package social_test

import (
	"Kajoogram/internal/pkg/social"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() social.Graph {
	return social.Graph{
		Owner:    100,
		Friends:  []uint64{1, 2, 3},
		Incoming: []uint64{4, 5},
		Sent:     []uint64{6},
	}
}

func TestStatus(t *testing.T) {
	g := seeded()
	assert.Equal(t, social.StatusFriend, g.Status(2))
	assert.Equal(t, social.StatusRequestReceived, g.Status(5))
	assert.Equal(t, social.StatusRequestSent, g.Status(6))
	assert.Equal(t, social.StatusNone, g.Status(7))
}

func TestSuggestions(t *testing.T) {
	directory := []uint64{1, 2, 3, 4, 5, 6, 7, 100, 8}
	assert.Equal(t, []uint64{7, 8}, seeded().Suggestions(directory))
	assert.Empty(t, seeded().Suggestions(nil))
}

func TestSendRequest(t *testing.T) {
	g := seeded()

	next, changed, err := g.SendRequest(7)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, social.StatusRequestSent, next.Status(7))
	assert.Equal(t, social.StatusNone, g.Status(7), "original graph must not change")

	again, changed, err := next.SendRequest(7)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, next.Sent, again.Sent)

	_, _, err = g.SendRequest(1)
	assert.ErrorIs(t, err, social.ErrAlreadyConnected)
	_, _, err = g.SendRequest(4)
	assert.ErrorIs(t, err, social.ErrAlreadyConnected)
	_, _, err = g.SendRequest(100)
	assert.ErrorIs(t, err, social.ErrSelf)
}

func TestAcceptRequest(t *testing.T) {
	g := seeded()
	require.Equal(t, social.StatusRequestReceived, g.Status(4))

	next, err := g.AcceptRequest(4)
	require.NoError(t, err)
	assert.Equal(t, social.StatusFriend, next.Status(4))
	assert.NotContains(t, next.Incoming, uint64(4))
	assert.Equal(t, []uint64{1, 2, 3, 4}, next.Friends)

	_, err = next.AcceptRequest(4)
	assert.ErrorIs(t, err, social.ErrNoRequest)
	_, err = g.AcceptRequest(7)
	assert.ErrorIs(t, err, social.ErrNoRequest)
}

func TestDeleteAndRemove(t *testing.T) {
	g := seeded()

	next, changed := g.DeleteRequest(5)
	assert.True(t, changed)
	assert.Equal(t, social.StatusNone, next.Status(5))
	_, changed = next.DeleteRequest(5)
	assert.False(t, changed)

	next, changed = next.RemoveFriend(1)
	assert.True(t, changed)
	assert.Equal(t, []uint64{2, 3}, next.Friends)
	_, changed = next.RemoveFriend(1)
	assert.False(t, changed)

	assert.Equal(t, []uint64{1, 5, 7}, next.Suggestions([]uint64{1, 2, 5, 6, 7}))
}
