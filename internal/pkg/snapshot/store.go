package snapshot

import (
	"context"
	"fmt"
	log "log/slog"
	"slices"
	"sync"

	"github.com/goccy/go-json"
)

const versionKey = "version"

// BlobStore 字符串键值存储，redis 实现见 pkg/redis
type BlobStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Store 受版本号管理的一组 JSON blob
type Store struct {
	blobs  BlobStore
	prefix string

	mu    sync.Mutex
	names []string
}

func NewStore(blobs BlobStore, prefix string) *Store {
	if prefix == "" {
		prefix = "snapshot"
	}
	return &Store{blobs: blobs, prefix: prefix}
}

func (s *Store) key(name string) string {
	return s.prefix + ":" + name
}

// Register 声明受管理的 blob，版本不一致时一并清除
func (s *Store) Register(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range names {
		if !slices.Contains(s.names, n) {
			s.names = append(s.names, n)
		}
	}
}

// Names 已注册的 blob
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.names)
}

// EnsureVersion 版本不一致时清除所有受管理的 blob 并写入新版本
func (s *Store) EnsureVersion(ctx context.Context, version string) (bool, error) {
	current, ok, err := s.blobs.Get(ctx, s.key(versionKey))
	if err != nil {
		return false, fmt.Errorf("read snapshot version: %w", err)
	}
	if ok && current == version {
		return false, nil
	}
	if err = s.wipe(ctx); err != nil {
		return false, err
	}
	if err = s.blobs.Set(ctx, s.key(versionKey), version); err != nil {
		return false, fmt.Errorf("write snapshot version: %w", err)
	}
	log.InfoContext(ctx, "snapshot version changed, managed keys wiped", "from", current, "to", version)
	return true, nil
}

// Reset 清除所有受管理的 blob 与版本号
func (s *Store) Reset(ctx context.Context) error {
	if err := s.wipe(ctx); err != nil {
		return err
	}
	return s.blobs.Delete(ctx, s.key(versionKey))
}

func (s *Store) wipe(ctx context.Context) error {
	names := s.Names()
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = s.key(n)
	}
	if err := s.blobs.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("wipe snapshot keys: %w", err)
	}
	return nil
}

// Load 读取 blob；不存在或无法解析时 found=false
func (s *Store) Load(ctx context.Context, name string, v any) (bool, error) {
	raw, ok, err := s.blobs.Get(ctx, s.key(name))
	if err != nil {
		return false, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	if !ok {
		return false, nil
	}
	if err = json.Unmarshal([]byte(raw), v); err != nil {
		log.WarnContext(ctx, "snapshot blob undecodable, treated as absent", "name", name, "err", err)
		return false, nil
	}
	return true, nil
}

// Save 写入 blob
func (s *Store) Save(ctx context.Context, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", name, err)
	}
	if err = s.blobs.Set(ctx, s.key(name), string(b)); err != nil {
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return nil
}
