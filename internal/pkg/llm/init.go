package llm

import (
	"Kajoogram/internal/api/config"
	log "log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

// Client 话题生成客户端；未配置 api_key 时 model 为空，所有调用返回空列表
type Client struct {
	model     llms.Model
	textModel string
	sem       *semaphore.Weighted
	timeout   time.Duration
}

// New 按配置初始化 openai 兼容的模型
func New(cfg config.LLMConfig) (*Client, error) {
	if cfg.ApiKey == "" {
		log.Warn("LLM api key is missing, topic suggestions disabled")
		return NewWithModel(nil, cfg.TextModel, cfg.Concurrency, cfg.Timeout()), nil
	}
	model, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}
	return NewWithModel(model, cfg.TextModel, cfg.Concurrency, cfg.Timeout()), nil
}

// NewWithModel 直接注入模型
func NewWithModel(model llms.Model, textModel string, concurrency int64, timeout time.Duration) *Client {
	return &Client{
		model:     model,
		textModel: textModel,
		sem:       newLimiter(concurrency),
		timeout:   timeout,
	}
}

// Enabled 是否配置了模型
func (c *Client) Enabled() bool {
	return c != nil && c.model != nil
}
