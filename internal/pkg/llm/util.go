package llm

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

var (
	ErrDisabled      = errors.New("llm is not configured")
	ErrEmptyResponse = errors.New("llm returned empty response")
)

func (c *Client) fetchModel(ctx context.Context, systemPrompt, userPrompt string, temp float64) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.sem.Release(1)

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}
	log.DebugContext(ctx, "正在请求AI大模型", "model", c.textModel)
	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithModel(c.textModel),
		llms.WithTemperature(temp),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}

// parseStringList 解析模型输出的 JSON 字符串数组，兼容 ```json 代码块与 {"topics":[...]} 包装
func parseStringList(text string, limit int) ([]string, error) {
	text = stripFence(text)

	var list []string
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		var wrapped map[string][]string
		if err2 := json.Unmarshal([]byte(text), &wrapped); err2 != nil || len(wrapped) != 1 {
			return nil, err
		}
		for _, v := range wrapped {
			list = v
		}
	}

	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
