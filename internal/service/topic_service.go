package service

import (
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/feed"
	"context"
	"crypto/sha1"
	"encoding/hex"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

// TopicMissTTL AI 失败后在此期间直接返回兜底结果，不再发起调用
const TopicMissTTL = time.Minute

// TopicSuggester AI 话题来源，由 llm.Client 实现
type TopicSuggester interface {
	DiscoverTopics(ctx context.Context) []string
	VideoTopics(ctx context.Context, title string) []string
}

type TopicService interface {
	// DiscoverTopics 以 All 开头；AI 不可用时返回静态列表
	DiscoverTopics(ctx context.Context) []string
	// VideoTopics AI 不可用时返回空列表
	VideoTopics(ctx context.Context, title string) []string
	// Refresh 重新生成发现页话题并写入缓存
	Refresh(ctx context.Context) ([]string, error)
}

type topicServiceImpl struct {
	ai  TopicSuggester
	kv  KVStore
	ttl time.Duration
}

func NewTopicService(ai TopicSuggester, kv KVStore, ttl time.Duration) TopicService {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &topicServiceImpl{ai: ai, kv: kv, ttl: ttl}
}

func (s *topicServiceImpl) DiscoverTopics(ctx context.Context) []string {
	if cached, ok := s.load(ctx, consts.DiscoverTopicsKey); ok && len(cached) > 0 {
		return cached
	}
	static := append([]string(nil), feed.StaticTopics...)
	if missed, err := s.kv.Exists(ctx, consts.DiscoverTopicsMiss); err == nil && missed {
		return static
	}
	topics, err := s.Refresh(ctx)
	if len(topics) == 0 {
		if err = s.kv.SetWithExpiration(ctx, consts.DiscoverTopicsMiss, "1", TopicMissTTL); err != nil {
			log.WarnContext(ctx, "failed to mark topic miss", "err", err)
		}
		return static
	}
	if err != nil {
		log.WarnContext(ctx, "failed to cache discover topics", "err", err)
	}
	return topics
}

func (s *topicServiceImpl) Refresh(ctx context.Context) ([]string, error) {
	ai := s.ai.DiscoverTopics(ctx)
	ai = lo.Filter(ai, func(t string, _ int) bool { return !strings.EqualFold(t, feed.TopicAll) })
	if len(ai) == 0 {
		return nil, nil
	}
	topics := append([]string{feed.TopicAll}, ai...)
	if err := s.save(ctx, consts.DiscoverTopicsKey, topics, s.ttl); err != nil {
		return topics, err
	}
	return topics, nil
}

func (s *topicServiceImpl) VideoTopics(ctx context.Context, title string) []string {
	title = strings.TrimSpace(title)
	if title == "" {
		return []string{}
	}
	sum := sha1.Sum([]byte(strings.ToLower(title)))
	key := consts.VideoTopicsKey + hex.EncodeToString(sum[:])
	if cached, ok := s.load(ctx, key); ok {
		return cached
	}
	topics := s.ai.VideoTopics(ctx, title)
	ttl := s.ttl
	if len(topics) == 0 {
		topics, ttl = []string{}, TopicMissTTL
	}
	if err := s.save(ctx, key, topics, ttl); err != nil {
		log.WarnContext(ctx, "failed to cache video topics", "err", err)
	}
	return topics
}

func (s *topicServiceImpl) load(ctx context.Context, key string) ([]string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "topic cache read failed", "key", key, "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var topics []string
	if err = json.Unmarshal([]byte(raw), &topics); err != nil {
		return nil, false
	}
	return topics, true
}

func (s *topicServiceImpl) save(ctx context.Context, key string, topics []string, ttl time.Duration) error {
	b, err := json.Marshal(topics)
	if err != nil {
		return err
	}
	return s.kv.SetWithExpiration(ctx, key, string(b), ttl)
}
