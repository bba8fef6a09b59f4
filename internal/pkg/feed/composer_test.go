package feed_test

import (
	"Kajoogram/internal/pkg/feed"
	"Kajoogram/internal/pkg/search"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct{ ID int }

func videos(n int, category string, offset uint64) []search.Video {
	out := make([]search.Video, n)
	for i := range out {
		out[i] = search.Video{ID: offset + uint64(i), Title: fmt.Sprintf("v%d", i), Category: category}
	}
	return out
}

func rng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func kinds[P any](items []feed.Item[P]) []feed.ItemKind {
	out := make([]feed.ItemKind, len(items))
	for i, it := range items {
		out[i] = it.Kind
	}
	return out
}

func TestPool(t *testing.T) {
	all := append(videos(12, "Music", 0), videos(3, "Tech", 100)...)

	assert.Len(t, feed.Pool(all, "All", 10), 15)
	assert.Len(t, feed.Pool(all, "trending", 10), 15)
	assert.Len(t, feed.Pool(all, "music", 10), 12)
	assert.Len(t, feed.Pool(all, "Tech", 10), 15, "small pools fall back to every video")
	assert.Len(t, feed.Pool(all, "Cricket", 10), 15)
}

func TestComposeAllTopic(t *testing.T) {
	posts := []post{{1}, {2}}
	vids := videos(30, "Music", 0)
	shorts := videos(25, "Music", 1000)

	items := feed.Compose(posts, vids, shorts, "All", rng(), feed.Options{})

	// 2 posts + 20 videos + 4 shelves
	require.Len(t, items, 26)
	assert.Equal(t, feed.KindPost, items[0].Kind)
	assert.Equal(t, 1, items[0].Post.ID)
	assert.Equal(t, feed.KindPost, items[1].Kind)

	rest := kinds(items[2:])
	for i, k := range rest {
		if (i+1)%6 == 0 {
			assert.Equal(t, feed.KindShelf, k, "position %d", i)
		} else {
			assert.Equal(t, feed.KindVideo, k, "position %d", i)
		}
	}
	for _, it := range items {
		if it.Kind == feed.KindShelf {
			assert.Len(t, it.Shelf, 20)
		}
	}

	seen := map[uint64]bool{}
	for _, it := range items {
		if it.Kind == feed.KindVideo {
			assert.False(t, seen[it.Video.ID], "duplicate video %d", it.Video.ID)
			seen[it.Video.ID] = true
		}
	}
	assert.Len(t, seen, 20)
}

func TestComposeTopicSkipsPosts(t *testing.T) {
	vids := append(videos(11, "News", 0), videos(11, "Tech", 100)...)
	items := feed.Compose([]post{{1}}, vids, nil, "News", rng(), feed.Options{ShelfEvery: 5})

	require.Len(t, items, 11)
	for _, it := range items {
		assert.Equal(t, feed.KindVideo, it.Kind)
		assert.Equal(t, "News", it.Video.Category)
	}
}

func TestComposeLaterPageOmitsPosts(t *testing.T) {
	items := feed.Compose([]post{{1}}, videos(3, "Music", 0), nil, "All", rng(), feed.Options{Page: 2})
	assert.Equal(t, []feed.ItemKind{feed.KindVideo, feed.KindVideo, feed.KindVideo}, kinds(items))
}

func TestComposeEmpty(t *testing.T) {
	items := feed.Compose[post](nil, nil, nil, "All", rng(), feed.Options{})
	assert.Empty(t, items)
}

func TestShuffleDeterministic(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := feed.Shuffle(in, rand.New(rand.NewPCG(7, 7)))
	b := feed.Shuffle(in, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, in, a)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in)
}
