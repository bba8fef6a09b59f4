package identity

import (
	"context"
	log "log/slog"
	"sync"
	"time"
)

// EventKind 会话变化类型
type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

// Event 会话变化；登出时 Session 为登出前的会话或空
type Event struct {
	Kind    EventKind
	Session *Session
}

// Listener 会话变化回调
type Listener func(ctx context.Context, ev Event)

// Hub 包装 Provider：统一超时并广播会话变化
type Hub struct {
	provider Provider
	timeout  time.Duration

	mu        sync.RWMutex
	nextID    int
	listeners map[int]Listener
}

func NewHub(provider Provider, timeout time.Duration) *Hub {
	return &Hub{provider: provider, timeout: timeout, listeners: map[int]Listener{}}
}

// Provider 当前提供方名称
func (h *Hub) Provider() string {
	return h.provider.Name()
}

// OnSessionChange 订阅会话变化，返回取消订阅函数
func (h *Hub) OnSessionChange(l Listener) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

func (h *Hub) publish(ctx context.Context, ev Event) {
	h.mu.RLock()
	ls := make([]Listener, 0, len(h.listeners))
	for _, l := range h.listeners {
		ls = append(ls, l)
	}
	h.mu.RUnlock()
	for _, l := range ls {
		l(ctx, ev)
	}
}

func (h *Hub) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func (h *Hub) SignIn(ctx context.Context, email, password string) (*Session, error) {
	cctx, cancel := h.withTimeout(ctx)
	defer cancel()
	sess, err := h.provider.SignIn(cctx, email, password)
	if err != nil {
		log.WarnContext(ctx, "identity sign in failed", "provider", h.provider.Name(), "err", err)
		return nil, err
	}
	h.publish(ctx, Event{Kind: EventSignedIn, Session: sess})
	return sess, nil
}

func (h *Hub) SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error) {
	cctx, cancel := h.withTimeout(ctx)
	defer cancel()
	res, err := h.provider.SignUp(cctx, email, password, profile)
	if err != nil {
		log.WarnContext(ctx, "identity sign up failed", "provider", h.provider.Name(), "err", err)
		return nil, err
	}
	if res.Session != nil {
		h.publish(ctx, Event{Kind: EventSignedIn, Session: res.Session})
	}
	return res, nil
}

func (h *Hub) SignOut(ctx context.Context, sess *Session) error {
	cctx, cancel := h.withTimeout(ctx)
	defer cancel()
	token := ""
	if sess != nil {
		token = sess.AccessToken
	}
	if err := h.provider.SignOut(cctx, token); err != nil {
		log.WarnContext(ctx, "identity sign out failed", "provider", h.provider.Name(), "err", err)
		return err
	}
	h.publish(ctx, Event{Kind: EventSignedOut, Session: sess})
	return nil
}

// GetSession 用提供方令牌换取会话；令牌无效返回 ErrUnauthenticated
func (h *Hub) GetSession(ctx context.Context, accessToken string) (*Session, error) {
	if accessToken == "" {
		return nil, ErrUnauthenticated
	}
	cctx, cancel := h.withTimeout(ctx)
	defer cancel()
	return h.provider.GetUser(cctx, accessToken)
}
