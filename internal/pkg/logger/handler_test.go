package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	l.InfoContext(WithTraceID(context.Background(), "abc"), "hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line[TraceIDKey])
}

func TestTracedOnlyDropsUntraced(t *testing.T) {
	var local, remote bytes.Buffer
	h := &ContextHandler{Fanout(
		log.NewJSONHandler(&local, nil),
		TracedOnly(log.NewJSONHandler(&remote, nil)),
	)}
	l := log.New(h)

	l.Info("startup")
	l.InfoContext(WithTraceID(context.Background(), "req-1"), "request")

	assert.Equal(t, 2, strings.Count(local.String(), "\n"))
	assert.Equal(t, 1, strings.Count(remote.String(), "\n"))
	assert.Contains(t, remote.String(), "req-1")
}

func TestNewTraceID(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewTraceID("job"), "job-"))
	assert.NotEqual(t, NewTraceID(""), NewTraceID(""))
	assert.Empty(t, TraceID(context.Background()))
}
