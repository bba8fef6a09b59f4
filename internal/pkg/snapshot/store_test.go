package snapshot_test

import (
	"Kajoogram/internal/pkg/snapshot"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBlobs struct {
	mu      sync.Mutex
	data    map[string]string
	failSet bool
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: map[string]string{}}
}

func (m *memBlobs) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBlobs) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("store down")
	}
	m.data[key] = value
	return nil
}

func (m *memBlobs) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type page struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

func TestEnsureVersionWipesOnMismatch(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	store := snapshot.NewStore(blobs, "kg")
	store.Register("pages", "reports")

	wiped, err := store.EnsureVersion(ctx, "v1")
	require.NoError(t, err)
	assert.True(t, wiped)

	require.NoError(t, store.Save(ctx, "pages", []page{{Key: "help"}}))
	blobs.data["unrelated"] = "keep"

	wiped, err = store.EnsureVersion(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, wiped)
	assert.Contains(t, blobs.data, "kg:pages")

	wiped, err = store.EnsureVersion(ctx, "v2")
	require.NoError(t, err)
	assert.True(t, wiped)
	assert.NotContains(t, blobs.data, "kg:pages")
	assert.Equal(t, "v2", blobs.data["kg:version"])
	assert.Equal(t, "keep", blobs.data["unrelated"])
}

func TestLoadUndecodableIsAbsent(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	blobs.data["kg:pages"] = "{not json"
	store := snapshot.NewStore(blobs, "kg")

	var out []page
	found, err := store.Load(ctx, "pages", &out)
	require.NoError(t, err)
	assert.False(t, found)

	c, err := snapshot.NewCollection(ctx, store, "pages", []page{{Key: "about", Title: "About"}})
	require.NoError(t, err)
	assert.Equal(t, []page{{Key: "about", Title: "About"}}, c.All())
}

func TestCollectionRehydrates(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	store := snapshot.NewStore(blobs, "kg")

	c, err := snapshot.NewCollection[page](ctx, store, "pages", nil)
	require.NoError(t, err)
	assert.Empty(t, c.All())

	require.NoError(t, c.Mutate(ctx, func(items []page) ([]page, error) {
		return append([]page{{Key: "help", Title: "Help"}}, items...), nil
	}))

	again, err := snapshot.NewCollection(ctx, snapshot.NewStore(blobs, "kg"), "pages", []page{{Key: "default"}})
	require.NoError(t, err)
	assert.Equal(t, []page{{Key: "help", Title: "Help"}}, again.All())

	got, ok := again.Find(func(p page) bool { return p.Key == "help" })
	assert.True(t, ok)
	assert.Equal(t, "Help", got.Title)
	assert.Len(t, again.Filter(func(p page) bool { return p.Key == "nope" }), 0)
}

func TestMutateKeepsStateOnFailure(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	store := snapshot.NewStore(blobs, "kg")
	c, err := snapshot.NewCollection(ctx, store, "pages", []page{{Key: "a"}})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = c.Mutate(ctx, func(items []page) ([]page, error) { return nil, errBoom })
	assert.ErrorIs(t, err, errBoom)

	blobs.failSet = true
	err = c.Mutate(ctx, func(items []page) ([]page, error) { return append(items, page{Key: "b"}), nil })
	assert.Error(t, err)
	assert.Equal(t, []page{{Key: "a"}}, c.All())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()
	store := snapshot.NewStore(blobs, "kg")
	store.Register("reports")
	_, err := store.EnsureVersion(ctx, "v1")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "reports", []int{1}))

	require.NoError(t, store.Reset(ctx))
	assert.Empty(t, blobs.data)
}
