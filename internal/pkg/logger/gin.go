package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLine struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Msg     string `json:"msg"`
	TraceID string `json:"trace_id"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Status  int    `json:"status"`
	Latency string `json:"latency"`
	Client  string `json:"client_ip"`
	Error   string `json:"error,omitempty"`
}

// SetupGin 注册访问日志与 panic 恢复
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/api/ping"},
		Formatter: formatAccess,
	}))
	r.Use(gin.Recovery())
}

func formatAccess(p gin.LogFormatterParams) string {
	var traceID string
	if id, ok := p.Keys[TraceIDKey].(string); ok {
		traceID = id
	} else if p.Request != nil {
		traceID = TraceID(p.Request.Context())
	}

	level := "INFO"
	if p.StatusCode >= 500 {
		level = "ERROR"
	}
	b, err := json.Marshal(accessLine{
		Time:    p.TimeStamp.Format(time.RFC3339),
		Level:   level,
		Msg:     "GIN_ACCESS",
		TraceID: traceID,
		Method:  p.Method,
		Path:    p.Path,
		Status:  p.StatusCode,
		Latency: p.Latency.String(),
		Client:  p.ClientIP,
		Error:   p.ErrorMessage,
	})
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}
