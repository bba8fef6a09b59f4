package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	slowHTTP  = 500 * time.Millisecond
	bodyLimit = 1000
)

// HTTPTransport 出站 HTTP 日志；请求体中的密码字段被遮盖
type HTTPTransport struct {
	Name      string
	Transport http.RoundTripper
}

func NewHTTPTransport(name string) *HTTPTransport {
	return &HTTPTransport{Name: name, Transport: http.DefaultTransport}
}

func (t *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	next := t.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	resp, err := next.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("upstream", t.Name),
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Duration("latency", elapsed),
	}
	if err != nil {
		log.ErrorContext(req.Context(), "HTTP_UPSTREAM_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}
	fields = append(fields, log.Int("status", resp.StatusCode))

	if resp.StatusCode >= 400 && resp.Body != nil {
		body, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewReader(body))
		fields = append(fields, log.String("res_body", truncate(string(body))))
		log.WarnContext(req.Context(), "HTTP_UPSTREAM_FAIL", fields...)
		return resp, nil
	}
	if elapsed > slowHTTP {
		log.WarnContext(req.Context(), "HTTP_UPSTREAM_SLOW", fields...)
	}
	return resp, nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > bodyLimit {
		return s[:bodyLimit] + "...[truncated]"
	}
	return s
}
