package job

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/consts"
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLocker struct {
	mu      sync.Mutex
	held    map[string]string
	unlocks int
	err     error
}

func (f *fakeLocker) TryLock(_ context.Context, key, value string, _ time.Duration, _ int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.held[key]; ok {
		return false, nil
	}
	f.held[key] = value
	return true, nil
}

func (f *fakeLocker) UnLock(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] == value {
		delete(f.held, key)
		f.unlocks++
	}
	return nil
}

type countingMedia struct {
	runs int
}

func (c *countingMedia) Upload(context.Context, *multipart.FileHeader) (*dto.MediaDTO, error) {
	return nil, nil
}
func (c *countingMedia) Claim(context.Context, ...string) {}
func (c *countingMedia) CleanupExpired(context.Context) (int, error) {
	c.runs++
	return 2, nil
}

type stubTopics struct {
	refreshed int
}

func (s *stubTopics) DiscoverTopics(context.Context) []string     { return nil }
func (s *stubTopics) VideoTopics(context.Context, string) []string { return nil }
func (s *stubTopics) Refresh(context.Context) ([]string, error) {
	s.refreshed++
	return []string{"All", "Jazz"}, nil
}

func TestRunLockedReleasesLock(t *testing.T) {
	locker := &fakeLocker{held: map[string]string{}}
	media := &countingMedia{}
	j := NewMediaCleanupJob(media, locker)

	j.Run()
	j.Run()

	assert.Equal(t, 2, media.runs)
	assert.Equal(t, 2, locker.unlocks)
	assert.Empty(t, locker.held)
}

func TestRunLockedSkipsWhenHeld(t *testing.T) {
	locker := &fakeLocker{held: map[string]string{}}
	topics := &stubTopics{}
	j := NewTopicRefreshJob(topics, locker)

	locker.held[consts.TopicRefreshLock] = "other-instance"
	j.Run()
	assert.Equal(t, 0, topics.refreshed)

	delete(locker.held, consts.TopicRefreshLock)
	j.Run()
	assert.Equal(t, 1, topics.refreshed)
}

func TestRunLockedSkipsOnLockError(t *testing.T) {
	locker := &fakeLocker{held: map[string]string{}, err: errors.New("redis down")}
	media := &countingMedia{}
	NewMediaCleanupJob(media, locker).Run()
	assert.Equal(t, 0, media.runs)
}
