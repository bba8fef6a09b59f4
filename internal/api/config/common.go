package config

import "time"

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Search    SearchConfig    `mapstructure:"search"`
	Feed      FeedConfig      `mapstructure:"feed"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Cron      CronConfig      `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig 搜索历史等文档数据
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

type LLMConfig struct {
	URL         string `mapstructure:"url"`
	TextModel   string `mapstructure:"text_model"`
	ApiKey      string `mapstructure:"api_key"`
	Concurrency int64  `mapstructure:"concurrency"`
	TimeoutSec  int    `mapstructure:"timeout_sec"`
	CacheTTLMin int    `mapstructure:"cache_ttl_min"`
}

// Timeout 单次调用超时
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// AuthConfig 身份提供方与本地令牌
type AuthConfig struct {
	Provider        string         `mapstructure:"provider"`
	AdminEmails     []string       `mapstructure:"admin_emails"`
	JWTSecret       string         `mapstructure:"jwt_secret"`
	TokenTTLHours   int            `mapstructure:"token_ttl_hours"`
	RequestTimeoutS int            `mapstructure:"request_timeout_sec"`
	Supabase        SupabaseConfig `mapstructure:"supabase"`
	Firebase        FirebaseConfig `mapstructure:"firebase"`
}

type SupabaseConfig struct {
	URL     string `mapstructure:"url"`
	AnonKey string `mapstructure:"anon_key"`
}

type FirebaseConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
}

// RequestTimeout 调用身份提供方的超时
func (c AuthConfig) RequestTimeout() time.Duration {
	if c.RequestTimeoutS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeoutS) * time.Second
}

// TokenTTL 本地令牌有效期
func (c AuthConfig) TokenTTL() time.Duration {
	if c.TokenTTLHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(c.TokenTTLHours) * time.Hour
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
	Level   string `mapstructure:"level"`
}

type AnalyticsConfig struct {
	Timezone string `mapstructure:"timezone"`
	TopN     int    `mapstructure:"top_n"`
}

// Location 聚合使用的时区，非法值回落为 UTC
func (c AnalyticsConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type SearchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Debounce 防抖间隔
func (c SearchConfig) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

type FeedConfig struct {
	PageSize   int `mapstructure:"page_size"`
	ShelfEvery int `mapstructure:"shelf_every"`
	ShelfSize  int `mapstructure:"shelf_size"`
	MinPool    int `mapstructure:"min_pool"`
}

type SnapshotConfig struct {
	Version string `mapstructure:"version"`
	Prefix  string `mapstructure:"prefix"`
}

type CronConfig struct {
	TopicRefresh string `mapstructure:"topic_refresh"`
	MediaCleanup string `mapstructure:"media_cleanup"`
}
