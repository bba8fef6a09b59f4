package api

import (
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/logger"
	"Kajoogram/internal/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(group.Auth)
	authOpt := middleware.AuthOptionalMiddleware(group.Auth)
	admin := middleware.CheckRoles(consts.RoleAdmin)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signin", group.AuthHandler.SignIn)
			authGroup.POST("/signup", group.AuthHandler.SignUp)
			authGroup.GET("/session", authOpt, group.AuthHandler.Session)
			authGroup.POST("/signout", auth, group.AuthHandler.SignOut)
		}

		userGroup := apiGroup.Group("/user", auth)
		{
			userGroup.GET("/me", group.UserHandler.GetMe)
			userGroup.PUT("/me", group.UserHandler.UpdateMe)
		}

		topicGroup := apiGroup.Group("/topics")
		{
			topicGroup.GET("/discover", group.FeedHandler.DiscoverTopics)
			topicGroup.GET("/video", group.FeedHandler.VideoTopics)
		}

		apiGroup.GET("/feed/discover", group.FeedHandler.Discover)

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.GET("", authOpt, group.SearchHandler.Search)
			searchGroup.GET("/live", group.WsHandler.LiveSearch)
			searchGroup.GET("/history", auth, group.SearchHandler.History)
			searchGroup.DELETE("/history", auth, group.SearchHandler.ClearHistory)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/user/:user_id", group.PostHandler.GetPostByUserId)
			postGroup.POST("/:post_id/view", group.PostHandler.Act(repository.CounterViews))
			postGroup.POST("/:post_id/share", group.PostHandler.Act(repository.CounterShares))

			authGroup := postGroup.Group("", auth)
			{
				authGroup.GET("", group.PostHandler.GetPostSelf)
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/like", group.PostHandler.Act(repository.CounterLikes))
				authGroup.POST("/:post_id/comment", group.PostHandler.Act(repository.CounterComments))
			}
		}

		analyticsGroup := apiGroup.Group("/analytics", auth)
		{
			analyticsGroup.GET("/overview", group.AnalyticsHandler.Overview)
			analyticsGroup.GET("/:metric", group.AnalyticsHandler.Report)
			analyticsGroup.GET("/:metric/posts", group.AnalyticsHandler.Posts)
		}

		friendGroup := apiGroup.Group("/friends", auth)
		{
			friendGroup.GET("", group.FriendHandler.GetLists)
			friendGroup.GET("/:user_id", group.FriendHandler.GetUser)
			friendGroup.POST("/:user_id/request", group.FriendHandler.SendRequest)
			friendGroup.POST("/:user_id/accept", group.FriendHandler.AcceptRequest)
			friendGroup.DELETE("/:user_id/request", group.FriendHandler.DeleteRequest)
			friendGroup.DELETE("/:user_id", group.FriendHandler.RemoveFriend)
		}

		catalogGroup := apiGroup.Group("/catalog")
		{
			catalogGroup.GET("/categories", group.CategoryHandler.List)
			catalogGroup.GET("/platforms", group.PlatformHandler.List)
			catalogGroup.GET("/labels", group.LabelHandler.List)
			catalogGroup.GET("/banners", group.BannerHandler.List)
			catalogGroup.GET("/products", group.ProductHandler.ListProducts)
			catalogGroup.GET("/products/:id", group.ProductHandler.GetProduct)
			catalogGroup.GET("/videos", group.VideoHandler.ListVideos)
			catalogGroup.GET("/videos/:id", group.VideoHandler.GetVideo)
			catalogGroup.GET("/shorts", group.VideoHandler.ListShorts)
			catalogGroup.GET("/channels", group.VideoHandler.ListChannels)
			catalogGroup.GET("/channels/:id", group.VideoHandler.GetChannel)
		}

		pageGroup := apiGroup.Group("/pages")
		{
			pageGroup.GET("", group.ContentHandler.ListPages)
			pageGroup.GET("/:key", group.ContentHandler.GetPage)
		}

		notificationGroup := apiGroup.Group("/notifications", auth)
		{
			notificationGroup.GET("", group.NotificationHandler.ListMine)
			notificationGroup.POST("/:id/read", group.NotificationHandler.MarkRead)
		}

		apiGroup.POST("/reports", auth, group.ReportHandler.CreateReport)

		mediaGroup := apiGroup.Group("/media", auth)
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		// 需要登录 & 拥有 admin 角色
		adminGroup := apiGroup.Group("/admin", auth, admin)
		{
			ordered := []struct {
				path string
				h    orderedRoutes
			}{
				{"/categories", group.CategoryHandler},
				{"/platforms", group.PlatformHandler},
				{"/labels", group.LabelHandler},
			}
			for _, o := range ordered {
				g := adminGroup.Group(o.path)
				g.POST("", o.h.Add)
				g.GET("/:id", o.h.Get)
				g.PUT("/:id", o.h.Update)
				g.DELETE("/:id", o.h.Delete)
				g.POST("/move", o.h.Move)
			}

			bannerGroup := adminGroup.Group("/banners")
			{
				bannerGroup.POST("", group.BannerHandler.Add)
				bannerGroup.DELETE("/:id", group.BannerHandler.Delete)
				bannerGroup.POST("/move", group.BannerHandler.Move)
			}

			productGroup := adminGroup.Group("/products")
			{
				productGroup.POST("", group.ProductHandler.CreateProduct)
				productGroup.PUT("/:id", group.ProductHandler.UpdateProduct)
				productGroup.DELETE("/:id", group.ProductHandler.DeleteProduct)
			}

			reportGroup := adminGroup.Group("/reports")
			{
				reportGroup.GET("", group.ReportHandler.ListReports)
				reportGroup.GET("/:id", group.ReportHandler.GetReport)
				reportGroup.PUT("/:id/status", group.ReportHandler.UpdateStatus)
			}

			adminGroup.GET("/notifications", group.NotificationHandler.ListAll)
			adminGroup.POST("/notifications", group.NotificationHandler.Send)
			adminGroup.PUT("/pages/:key", group.ContentHandler.UpdatePage)

			adminGroup.GET("/roles", group.UserHandler.GetAllRoles)
			adminGroup.POST("/roles", group.UserHandler.GrantRole)
			adminGroup.DELETE("/roles", group.UserHandler.RevokeRole)
		}
	}

	return r
}

// orderedRoutes 可排序目录的管理接口
type orderedRoutes interface {
	Add(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Move(c *gin.Context)
}
