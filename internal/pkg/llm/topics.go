package llm

import (
	"context"
	"fmt"
	log "log/slog"
)

const (
	DiscoverTopicCount = 12
	VideoTopicCount    = 8

	topicSystemPrompt = "You suggest short topic labels for a social video and shopping app. " +
		"Respond with a JSON array of strings only. Each label is one or two words."
	discoverSeed = "trending and popular video categories for a modern social video platform " +
		"(e.g. Music, Tech, Gaming, Vlog, Comedy)"
)

// SuggestTopics 任何失败都返回空列表，调用方回落到静态列表
func (c *Client) SuggestTopics(ctx context.Context, seed string, count int) []string {
	if !c.Enabled() || count <= 0 {
		return []string{}
	}
	prompt := fmt.Sprintf("List %d concise topics for: %s", count, seed)
	text, err := c.fetchModel(ctx, topicSystemPrompt, prompt, 0.7)
	if err != nil {
		log.WarnContext(ctx, "AI话题生成失败", "err", err)
		return []string{}
	}
	topics, err := parseStringList(text, count)
	if err != nil {
		log.WarnContext(ctx, "AI话题结果解析失败", "err", err, "resp", truncate(text, 300))
		return []string{}
	}
	return topics
}

// DiscoverTopics 发现页分类
func (c *Client) DiscoverTopics(ctx context.Context) []string {
	return c.SuggestTopics(ctx, discoverSeed, DiscoverTopicCount)
}

// VideoTopics 视频相关标签
func (c *Client) VideoTopics(ctx context.Context, title string) []string {
	if title == "" {
		return []string{}
	}
	return c.SuggestTopics(ctx, fmt.Sprintf("tags or topic keywords for a video titled %q", title), VideoTopicCount)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
