package snapshot

import (
	"context"
	"slices"
	"sync"
)

// Collection 内存中的有序集合，每次修改后整体写回 blob
type Collection[T any] struct {
	mu    sync.RWMutex
	name  string
	store *Store
	items []T
}

// NewCollection 从 blob 恢复，缺失时使用 defaults
func NewCollection[T any](ctx context.Context, store *Store, name string, defaults []T) (*Collection[T], error) {
	store.Register(name)
	c := &Collection[T]{name: name, store: store}

	var items []T
	found, err := store.Load(ctx, name, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		items = slices.Clone(defaults)
		if err = store.Save(ctx, name, items); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	return c, nil
}

// All 当前快照的副本
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Find 返回第一个满足条件的元素
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Filter 返回全部满足条件的元素
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Mutate fn 在副本上修改，写回成功后才替换内存数据
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(slices.Clone(c.items))
	if err != nil {
		return err
	}
	if err = c.store.Save(ctx, c.name, next); err != nil {
		return err
	}
	c.items = next
	return nil
}
