package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "KAJOO"

// LoadConfig 读取 .env 与 configs/config.yaml，环境变量 KAJOO_* 覆盖同名配置
func LoadConfig(path string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path == "" {
		path = "./configs"
	}
	v.AddConfigPath(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("auth.provider", "local")
	v.SetDefault("auth.token_ttl_hours", 72)
	v.SetDefault("auth.request_timeout_sec", 10)
	v.SetDefault("mongo.database", "kajoogram")
	v.SetDefault("minio.bucket", "kajoogram")
	v.SetDefault("llm.concurrency", 4)
	v.SetDefault("llm.timeout_sec", 15)
	v.SetDefault("llm.cache_ttl_min", 360)
	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("analytics.top_n", 5)
	v.SetDefault("search.debounce_ms", 300)
	v.SetDefault("feed.page_size", 20)
	v.SetDefault("feed.shelf_every", 5)
	v.SetDefault("feed.shelf_size", 20)
	v.SetDefault("feed.min_pool", 10)
	v.SetDefault("snapshot.version", "v1")
	v.SetDefault("snapshot.prefix", "kajoogram")
	v.SetDefault("cron.topic_refresh", "0 0 */6 * * *")
	v.SetDefault("cron.media_cleanup", "@hourly")
	v.SetDefault("logstash.level", "info")
}
