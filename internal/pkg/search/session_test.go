package search_test

import (
	"Kajoogram/internal/pkg/search"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerRunsLastOnly(t *testing.T) {
	d := search.NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		i := i
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(5), last.Load())
}

func TestDebouncerStop(t *testing.T) {
	d := search.NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestSessionQueryResetsFilters(t *testing.T) {
	type result struct {
		query   string
		filters search.Filters
		res     *search.Results
	}
	var mu sync.Mutex
	var got []result
	s := search.NewSession(search.NewEngine(), testCatalog, 10*time.Millisecond, func(q string, f search.Filters, res *search.Results) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, result{q, f, res})
	})
	defer s.Close()

	s.SetQuery("go")
	s.SetFilters(search.Filters{Duration: search.DurationShort})
	q, f := s.State()
	assert.Equal(t, "go", q)
	assert.Equal(t, search.DurationShort, f.Duration)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)
	mu.Lock()
	assert.Equal(t, []uint64{3}, videoIDs(got[0].res.Videos))
	mu.Unlock()

	s.SetQuery("gopher")
	_, f = s.State()
	assert.True(t, f.IsDefault())

	s.SetQuery("gopher")
	s.SetFilters(search.Filters{Source: search.SourceYoutube})
	s.SetQuery("gopher")
	_, f = s.State()
	assert.Equal(t, search.SourceYoutube, f.Source)
}
