package service

import (
	"context"
	"time"
)

// KVStore 缓存、令牌黑名单使用的键值存储，由 redis.Store 实现
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetWithExpiration(ctx context.Context, key, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// HashStore 临时媒体登记表
type HashStore interface {
	HSet(ctx context.Context, key, field, value string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
}

// SnapshotCollections 镜像到 blob 存储的本地状态集合
func SnapshotCollections() []string {
	return []string{pagesCollection, reportsCollection, notificationsCollection}
}
