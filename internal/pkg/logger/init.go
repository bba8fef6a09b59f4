package logger

import (
	"Kajoogram/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
	"time"
)

// LogWriter gin 访问日志的输出目标，连上 logstash 时指向远端
var LogWriter io.Writer = os.Stdout

// Init 安装默认 logger；logstash 不可达时只输出到 stdout
func Init(cfg config.LogstashConfig) {
	level := parseLevel(cfg.Level)
	stdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: level})

	var h log.Handler = stdout
	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err != nil {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "addr", cfg.Address, "err", err)
		} else {
			remote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: level}).WithAttrs([]log.Attr{
				log.String("target_index", cfg.Index),
				log.String("log_token", cfg.Token),
			})
			h = Fanout(stdout, TracedOnly(remote))
			LogWriter = io.MultiWriter(os.Stdout, conn)
		}
	}

	log.SetDefault(log.New(&ContextHandler{h}))
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
