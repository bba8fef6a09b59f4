package api

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/handler"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/model"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	Auth middleware.TokenValidator

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	FriendHandler       *handler.FriendHandler
	SearchHandler       *handler.SearchHandler
	WsHandler           *handler.WsHandler
	FeedHandler         *handler.FeedHandler
	VideoHandler        *handler.VideoHandler
	ProductHandler      *handler.ProductHandler
	CategoryHandler     *handler.OrderedHandler[model.Category, dto.CategoryDTO]
	PlatformHandler     *handler.OrderedHandler[model.Platform, dto.PlatformDTO]
	LabelHandler        *handler.OrderedHandler[model.Label, dto.LabelDTO]
	BannerHandler       *handler.OrderedHandler[model.Banner, dto.BannerDTO]
	ContentHandler      *handler.ContentHandler
	ReportHandler       *handler.ReportHandler
	NotificationHandler *handler.NotificationHandler
	MediaHandler        *handler.MediaHandler
}
