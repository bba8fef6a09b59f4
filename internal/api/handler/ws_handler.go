package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/logger"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/pkg/search"
	"Kajoogram/internal/service"
	log "log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler 实时搜索：客户端发送查询词或筛选条件，服务端防抖后推送结果
type WsHandler struct {
	searchSvc service.SearchService
}

func NewWsHandler(searchSvc service.SearchService) *WsHandler {
	return &WsHandler{searchSvc: searchSvc}
}

func (s *WsHandler) LiveSearch(c *gin.Context) {
	ctx := logger.WithTraceID(c.Request.Context(), logger.NewTraceID("ws"))

	// 升级 Websocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.ErrorContext(ctx, "WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// 防抖回调在计时器协程中执行，写操作需要串行
	var writeMu sync.Mutex
	push := func(v any) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		return conn.WriteJSON(v)
	}

	session, err := s.searchSvc.NewLiveSession(ctx, func(query string, filters search.Filters, res *search.Results) {
		err := push(dto.LiveSearchResult{Query: query, Filters: filters, Results: res})
		if err != nil {
			log.WarnContext(ctx, "WS 推送失败", "err", err)
		}
	})
	if err != nil {
		log.ErrorContext(ctx, "创建搜索会话失败", "err", err)
		_ = push(dto.Response{Code: response.InternalServerError, Message: service.UnExpectedError.Error()})
		return
	}
	defer session.Close()

	log.InfoContext(ctx, "实时搜索连接已建立")
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.InfoContext(ctx, "实时搜索连接已断开", "err", err)
			return
		}

		var msg dto.LiveSearchMessage
		if err = json.Unmarshal(raw, &msg); err != nil || (msg.Query == nil && msg.Filters == nil) {
			_ = push(dto.Response{Code: response.BadRequest, Message: service.ErrParamInvalid.Error()})
			continue
		}
		// 同时携带时先改查询词再改筛选，否则筛选会被重置
		if msg.Query != nil {
			session.SetQuery(*msg.Query)
		}
		if msg.Filters != nil {
			session.SetFilters(*msg.Filters)
		}
	}
}
