package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/lotuslabs/lotus-arcana-api/api/swagger"
	"github.com/lotuslabs/lotus-arcana-api/internal/handler"
	internalmiddleware "github.com/lotuslabs/lotus-arcana-api/internal/middleware"
	"github.com/lotuslabs/lotus-arcana-api/internal/repository"
	"github.com/lotuslabs/lotus-arcana-api/internal/service"
	"github.com/lotuslabs/lotus-arcana-api/pkg/cache"
	"github.com/lotuslabs/lotus-arcana-api/pkg/config"
	"github.com/lotuslabs/lotus-arcana-api/pkg/database"
	"github.com/lotuslabs/lotus-arcana-api/pkg/logger"
	corsmiddleware "github.com/lotuslabs/lotus-arcana-api/pkg/middleware/cors"
	reqidmiddleware "github.com/lotuslabs/lotus-arcana-api/pkg/middleware/requestid"
)

// @title Lotus Arcana Moderation API
// @version 1.0.0
// @description Submission, moderation and catalog backend for Lotus Arcana
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Catalog.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, true)
		}
	}
	if cacheSvc == nil {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Catalog.CacheTTL, logr, false)
	}

	draftRepo := repository.NewDraftRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	intakeSvc := service.NewIntakeService(draftRepo, validator.New(), logr)
	moderationSvc := service.NewModerationService(draftRepo, courseRepo, auditRepo, cacheSvc, metricsSvc, logr)
	catalogSvc := service.NewCatalogService(courseRepo, auditRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(catalogSvc)
	authSvc := service.NewAdminAuthService(cfg.Admin, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router := &handler.Router{
		Intake:     handler.NewIntakeHandler(intakeSvc),
		Moderation: handler.NewModerationHandler(moderationSvc),
		Catalog:    handler.NewCatalogHandler(catalogSvc),
		Session:    handler.NewSessionHandler(authSvc, cfg.Env == config.EnvProduction),
		Export:     handler.NewExportHandler(exportSvc),
		Auth:       authSvc,
	}
	router.Register(r, cfg.APIPrefix)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
