package feed

import (
	"Kajoogram/internal/pkg/search"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
)

const (
	TopicAll      = "All"
	TopicTrending = "Trending"
)

// StaticTopics AI 不可用时的话题列表
var StaticTopics = []string{
	"All", "Music", "Trending", "News", "Cartoon", "Tech", "Gaming",
	"Education", "Movies", "Comedy", "Cricket", "Food", "Travel",
}

// ItemKind 信息流条目类型
type ItemKind string

const (
	KindPost  ItemKind = "post"
	KindVideo ItemKind = "video"
	KindShelf ItemKind = "shelf"
)

// Item 信息流条目，按 Kind 取对应字段
type Item[P any] struct {
	Kind  ItemKind       `json:"type"`
	Post  *P             `json:"post,omitempty"`
	Video *search.Video  `json:"video,omitempty"`
	Shelf []search.Video `json:"items,omitempty"`
}

// Options 组装参数
type Options struct {
	PageSize   int
	ShelfEvery int
	ShelfSize  int
	MinPool    int
	// Page 从 1 开始；帖子只出现在第一页
	Page int
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = 20
	}
	if o.ShelfEvery <= 0 {
		o.ShelfEvery = 5
	}
	if o.ShelfSize <= 0 {
		o.ShelfSize = 20
	}
	if o.MinPool <= 0 {
		o.MinPool = 10
	}
	if o.Page <= 0 {
		o.Page = 1
	}
	return o
}

// Pool 话题视频池；All 与 Trending 取全部，分类视频不足 MinPool 时回落为全部
func Pool(videos []search.Video, topic string, minPool int) []search.Video {
	if topic == "" || strings.EqualFold(topic, TopicAll) || strings.EqualFold(topic, TopicTrending) {
		return videos
	}
	pool := lo.Filter(videos, func(v search.Video, _ int) bool {
		return strings.EqualFold(v.Category, topic)
	})
	if len(pool) < minPool {
		return videos
	}
	return pool
}

// Compose 组装一页发现流：All 话题下帖子置顶，随后是打乱的视频，每 ShelfEvery 个视频插入一组短视频
func Compose[P any](posts []P, videos, shorts []search.Video, topic string, rng *rand.Rand, opts Options) []Item[P] {
	opts = opts.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	fresh := take(Shuffle(Pool(videos, topic, opts.MinPool), rng), opts.PageSize)

	items := make([]Item[P], 0, len(posts)+len(fresh)+len(fresh)/opts.ShelfEvery)
	if opts.Page == 1 && (topic == "" || strings.EqualFold(topic, TopicAll)) {
		for i := range posts {
			items = append(items, Item[P]{Kind: KindPost, Post: &posts[i]})
		}
	}
	for i := range fresh {
		items = append(items, Item[P]{Kind: KindVideo, Video: &fresh[i]})
		if (i+1)%opts.ShelfEvery == 0 && len(shorts) > 0 {
			items = append(items, Item[P]{Kind: KindShelf, Shelf: take(Shuffle(shorts, rng), opts.ShelfSize)})
		}
	}
	return items
}

// Shuffle Fisher-Yates 洗牌，返回新切片
func Shuffle[T any](in []T, rng *rand.Rand) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func take[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}
