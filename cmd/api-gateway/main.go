package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campusworks/qpr-api/internal/handler"
	"github.com/campusworks/qpr-api/internal/middleware"
	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/repository"
	"github.com/campusworks/qpr-api/internal/schema"
	"github.com/campusworks/qpr-api/internal/service"
	"github.com/campusworks/qpr-api/pkg/cache"
	"github.com/campusworks/qpr-api/pkg/config"
	"github.com/campusworks/qpr-api/pkg/database"
	"github.com/campusworks/qpr-api/pkg/logger"
	corsmiddleware "github.com/campusworks/qpr-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusworks/qpr-api/pkg/middleware/requestid"
)

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

	registry := schema.NewRegistry()
	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, analytics cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close()
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Analytics.CacheTTL, logr, cfg.Redis.Enabled)

	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	authSvc := service.NewAuthService(userRepo, departmentRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	recordSvc := service.NewRecordService(registry, recordRepo, cacheSvc, logr)
	analyticsSvc := service.NewAnalyticsService(registry, recordRepo, departmentRepo, cacheSvc, logr, cfg.Analytics.Parallelism)
	workbookSvc := service.NewWorkbookService(registry, recordSvc, metricsSvc, logr, cfg.Workbooks.MaxImportRows)
	departmentSvc := service.NewDepartmentService(departmentRepo, logr)
	userSvc := service.NewUserService(userRepo, validate, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	schemaHandler := handler.NewSchemaHandler(registry)
	recordHandler := handler.NewRecordHandler(recordSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	workbookHandler := handler.NewWorkbookHandler(workbookSvc)
	departmentHandler := handler.NewDepartmentHandler(departmentSvc)
	userHandler := handler.NewUserHandler(userSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
	}

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	departments := authed.Group("/departments")
	{
		departments.GET("", departmentHandler.List)
		departments.POST("", middleware.RequireRoles(models.RoleAdmin), departmentHandler.Create)
		departments.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), departmentHandler.Delete)
	}

	users := authed.Group("/users")
	users.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	kinds := authed.Group("/kinds")
	{
		kinds.GET("", schemaHandler.ListKinds)
		kinds.GET("/:kind", schemaHandler.DescribeKind)
	}

	reports := authed.Group("/reports/:kind")
	{
		reports.GET("/records", recordHandler.List)
		reports.POST("/records", recordHandler.Create)
		reports.GET("/records/:id", recordHandler.Get)
		reports.PUT("/records/:id", recordHandler.Update)
		reports.DELETE("/records/:id", recordHandler.Delete)

		reports.GET("/workbook/export", workbookHandler.Export)
		reports.GET("/workbook/template", workbookHandler.Template)
		reports.POST("/workbook/import", workbookHandler.Import)
	}

	analytics := authed.Group("/analytics")
	analytics.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleHOD))
	{
		analytics.GET("/categories", analyticsHandler.Categories)
		analytics.GET("/counts", analyticsHandler.Counts)
		analytics.GET("/counts/export", analyticsHandler.Export)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
