package wire

import (
	"Kajoogram/internal/api"
	"Kajoogram/internal/api/config"
	"Kajoogram/internal/api/handler"
	"Kajoogram/internal/job"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/cron"
	"Kajoogram/internal/pkg/database"
	"Kajoogram/internal/pkg/identity"
	"Kajoogram/internal/pkg/llm"
	"Kajoogram/internal/pkg/minio"
	"Kajoogram/internal/pkg/mongo"
	"Kajoogram/internal/pkg/redis"
	"Kajoogram/internal/pkg/search"
	"Kajoogram/internal/pkg/security"
	"Kajoogram/internal/pkg/snapshot"
	"Kajoogram/internal/repository"
	"Kajoogram/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *goredis.Client
	Mongo  *mongodrv.Database
	Cron   *cron.Manager
}

// Infra 外部连接，由 main 或 kajooctl 建立
type Infra struct {
	DB    *gorm.DB
	Redis *goredis.Client
	Mongo *mongodrv.Database
}

// NewSnapshotStore 注册全部本地状态集合并校验版本号
func NewSnapshotStore(ctx context.Context, rdb *goredis.Client, cfg config.SnapshotConfig) (*snapshot.Store, error) {
	store := snapshot.NewStore(redis.NewStore(rdb), cfg.Prefix)
	store.Register(service.SnapshotCollections()...)
	if _, err := store.EnsureVersion(ctx, cfg.Version); err != nil {
		return nil, err
	}
	return store, nil
}

func BuildApplication(ctx context.Context, infra *Infra, cfg *config.Config) (*ApplicationContainer, error) {
	db := infra.DB
	kv := redis.NewStore(infra.Redis)

	storage, err := minio.New(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	ai, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}
	snapshots, err := NewSnapshotStore(ctx, infra.Redis, cfg.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	// repository
	userRepo := repository.NewUserRepo(db)
	userRolesRepo := repository.NewUserRolesRepo(db)
	postRepo := repository.NewPostRepository(db)
	friendshipRepo := repository.NewFriendshipRepo(db)
	productRepo := repository.NewProductRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	historyRepo := mongo.NewSearchHistoryRepo(infra.Mongo)

	// identity
	tokens := security.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	provider, err := identity.NewProvider(cfg.Auth, repository.NewCredentialStore(userRepo, userRolesRepo), tokens)
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	hub := identity.NewHub(provider, cfg.Auth.RequestTimeout())
	log.Info("identity provider ready", "provider", provider.Name())

	// service
	mediaService := service.NewMediaService(storage, kv)
	authService := service.NewAuthService(hub, userRepo, userRolesRepo, tokens, kv, cfg.Auth.AdminEmails)
	userService := service.NewUserService(userRepo, userRolesRepo)
	userRolesService := service.NewUserRolesService(userRolesRepo, userRepo)
	postService := service.NewPostService(postRepo, mediaService)
	analyticsService := service.NewAnalyticsService(postRepo, cfg.Analytics.Location(), cfg.Analytics.TopN)
	friendService := service.NewFriendService(friendshipRepo, userRepo)
	videoService := service.NewVideoService(videoRepo, userRepo)
	searchService := service.NewSearchService(search.NewEngine(), videoService, historyRepo, cfg.Search.Debounce())
	feedService := service.NewFeedService(postRepo, videoService, cfg.Feed)
	topicService := service.NewTopicService(ai, kv, time.Duration(cfg.LLM.CacheTTLMin)*time.Minute)
	productService := service.NewProductService(productRepo, mediaService)

	contentService, err := service.NewContentService(ctx, snapshots)
	if err != nil {
		return nil, err
	}
	reportService, err := service.NewReportService(ctx, snapshots, userRepo, mediaService)
	if err != nil {
		return nil, err
	}
	notificationService, err := service.NewNotificationService(ctx, snapshots, userRepo, mediaService)
	if err != nil {
		return nil, err
	}

	categories := service.NewCatalogService(repository.NewOrderedRepo[model.Category, *model.Category](db), mediaService,
		func(v *model.Category) string { return v.Image })
	platforms := service.NewCatalogService(repository.NewOrderedRepo[model.Platform, *model.Platform](db), mediaService,
		func(v *model.Platform) string { return v.Image })
	labels := service.NewCatalogService(repository.NewOrderedRepo[model.Label, *model.Label](db), mediaService,
		func(v *model.Label) string { return v.Image })
	banners := service.NewCatalogService(repository.NewOrderedRepo[model.Banner, *model.Banner](db), mediaService,
		func(v *model.Banner) string { return v.Image })

	handlers := &api.HandlersGroup{
		Auth:                authService,
		AuthHandler:         handler.NewAuthHandler(authService, userService),
		UserHandler:         handler.NewUserHandler(userService, userRolesService),
		PostHandler:         handler.NewPostHandler(postService),
		AnalyticsHandler:    handler.NewAnalyticsHandler(analyticsService),
		FriendHandler:       handler.NewFriendHandler(friendService),
		SearchHandler:       handler.NewSearchHandler(searchService),
		WsHandler:           handler.NewWsHandler(searchService),
		FeedHandler:         handler.NewFeedHandler(feedService, topicService),
		VideoHandler:        handler.NewVideoHandler(videoService),
		ProductHandler:      handler.NewProductHandler(productService),
		CategoryHandler:     handler.NewCategoryHandler(categories),
		PlatformHandler:     handler.NewPlatformHandler(platforms),
		LabelHandler:        handler.NewLabelHandler(labels),
		BannerHandler:       handler.NewBannerHandler(banners),
		ContentHandler:      handler.NewContentHandler(contentService),
		ReportHandler:       handler.NewReportHandler(reportService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(cfg.Cron,
		job.NewTopicRefreshJob(topicService, kv),
		job.NewMediaCleanupJob(mediaService, kv),
	)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
		Redis:  infra.Redis,
		Mongo:  infra.Mongo,
		Cron:   cronMgr,
	}, nil
}

// NewInfra 依次建立 MySQL、Redis、Mongo 连接
func NewInfra(cfg *config.Config) (*Infra, error) {
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	rdb, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis connection: %w", err)
	}
	mdb, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to create mongo connection: %w", err)
	}
	return &Infra{DB: db, Redis: rdb, Mongo: mdb}, nil
}

// Close 释放全部连接，错误只记录日志
func (s *Infra) Close(ctx context.Context) {
	if s.Mongo != nil {
		if err := s.Mongo.Client().Disconnect(ctx); err != nil {
			log.Warn("mongo disconnect failed", "err", err)
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Warn("redis close failed", "err", err)
		}
	}
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
