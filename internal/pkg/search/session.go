package search

import (
	"sync"
	"time"
)

// ResultFunc 接收一次防抖后的搜索结果
type ResultFunc func(query string, filters Filters, res *Results)

// Session 单个客户端的搜索会话：查询词变化时筛选条件重置
type Session struct {
	mu       sync.Mutex
	query    string
	filters  Filters
	engine   *Engine
	catalog  func() *Catalog
	clock    func() time.Time
	debounce *Debouncer
	onResult ResultFunc
}

// NewSession catalog 在每次执行时取最新数据
func NewSession(engine *Engine, catalog func() *Catalog, delay time.Duration, onResult ResultFunc) *Session {
	return &Session{
		filters:  DefaultFilters(),
		engine:   engine,
		catalog:  catalog,
		clock:    time.Now,
		debounce: NewDebouncer(delay),
		onResult: onResult,
	}
}

// SetQuery 更新查询词，筛选条件回到默认
func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	changed := q != s.query
	s.query = q
	if changed {
		s.filters = DefaultFilters()
	}
	s.mu.Unlock()
	s.schedule()
}

// SetFilters 更新筛选条件，保留查询词
func (s *Session) SetFilters(f Filters) {
	s.mu.Lock()
	s.filters = f.Normalize()
	s.mu.Unlock()
	s.schedule()
}

// State 当前查询词与筛选条件
func (s *Session) State() (string, Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.filters
}

// Close 取消尚未执行的搜索
func (s *Session) Close() {
	s.debounce.Stop()
}

func (s *Session) schedule() {
	s.debounce.Trigger(func() {
		q, f := s.State()
		res := s.engine.Search(s.catalog(), q, f, s.clock())
		if s.onResult != nil {
			s.onResult(q, f, res)
		}
	})
}
