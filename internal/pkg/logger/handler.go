package logger

import (
	"context"
	log "log/slog"
)

// FanoutHandler 将日志分发到多个 Handler
type FanoutHandler struct {
	handlers []log.Handler
}

func Fanout(handlers ...log.Handler) *FanoutHandler {
	return &FanoutHandler{handlers: handlers}
}

func (s *FanoutHandler) Enabled(ctx context.Context, level log.Level) bool {
	for _, h := range s.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (s *FanoutHandler) Handle(ctx context.Context, r log.Record) error {
	var first error
	for _, h := range s.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *FanoutHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &FanoutHandler{handlers: s.each(func(h log.Handler) log.Handler { return h.WithAttrs(attrs) })}
}

func (s *FanoutHandler) WithGroup(name string) log.Handler {
	return &FanoutHandler{handlers: s.each(func(h log.Handler) log.Handler { return h.WithGroup(name) })}
}

func (s *FanoutHandler) each(fn func(log.Handler) log.Handler) []log.Handler {
	out := make([]log.Handler, len(s.handlers))
	for i, h := range s.handlers {
		out[i] = fn(h)
	}
	return out
}

// TracedOnlyHandler 只放行带 trace_id 的日志，远端只收请求链路日志
type TracedOnlyHandler struct {
	next log.Handler
}

func TracedOnly(next log.Handler) *TracedOnlyHandler {
	return &TracedOnlyHandler{next: next}
}

func (s *TracedOnlyHandler) Enabled(ctx context.Context, level log.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *TracedOnlyHandler) Handle(ctx context.Context, r log.Record) error {
	traced := false
	r.Attrs(func(a log.Attr) bool {
		if a.Key == TraceIDKey && a.Value.String() != "" {
			traced = true
			return false
		}
		return true
	})
	if !traced {
		return nil
	}
	return s.next.Handle(ctx, r)
}

func (s *TracedOnlyHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &TracedOnlyHandler{next: s.next.WithAttrs(attrs)}
}

func (s *TracedOnlyHandler) WithGroup(name string) log.Handler {
	return &TracedOnlyHandler{next: s.next.WithGroup(name)}
}
