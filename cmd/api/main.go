package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lobbyworks/lobby-cms-backend/internal/config"
	"github.com/lobbyworks/lobby-cms-backend/internal/handler"
	"github.com/lobbyworks/lobby-cms-backend/internal/middleware"
	"github.com/lobbyworks/lobby-cms-backend/internal/migration"
	"github.com/lobbyworks/lobby-cms-backend/internal/repository"
	"github.com/lobbyworks/lobby-cms-backend/internal/routes"
	"github.com/lobbyworks/lobby-cms-backend/internal/service"
	pkgcache "github.com/lobbyworks/lobby-cms-backend/pkg/cache"
	"github.com/lobbyworks/lobby-cms-backend/pkg/jwt"
	pkglogger "github.com/lobbyworks/lobby-cms-backend/pkg/logger"
	pkgredis "github.com/lobbyworks/lobby-cms-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Lobby CMS Backend API
// @version         1.0
// @description     Casino lobby content management backend
//
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

func getConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pkglogger.InitStructured(cfg.Server.Env)
	zl := pkglogger.GetLogger()
	zl.Info().
		Str("env", cfg.Server.Env).
		Strs("env_files", dotenvFiles).
		Msg("starting lobby-cms-backend")

	// PostgreSQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	zl.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("connected to PostgreSQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis (optional; the API degrades to uncached operation without it)
	var redisClient *redis.Client
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			zl.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
			redisClient = nil
		} else {
			cacheService = pkgcache.NewService(redisClient)
			zl.Info().Msg("cache service initialized")
		}
	}

	// Repositories
	stateRepo := repository.NewStateRepository(db)
	gameRepo := repository.NewGameRepository(db)

	// Services
	cmsService, err := service.NewCmsService(stateRepo, cacheService)
	if err != nil {
		log.Fatalf("Failed to initialize CMS state: %v", err)
	}
	lobbyService := service.NewLobbyService(cmsService, gameRepo, cacheService)
	gameService := service.NewGameService(gameRepo, cacheService)

	jwtManager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authService := service.NewAuthService(jwtManager, cfg.Auth.AdminUser, cfg.Auth.AdminPassword)

	// Startup gauges
	middleware.SetCmsRevision(cmsService.State().Revision)
	if count, err := gameRepo.Count(); err == nil {
		middleware.SetCatalogSize(count)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	cmsHandler := handler.NewCmsHandler(cmsService)
	globalHandler := handler.NewGlobalHandler(cmsService)
	lobbyHandler := handler.NewLobbyHandler(lobbyService)
	gameHandler := handler.NewGameHandler(gameService, lobbyService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && cfg.Server.Env == "production" {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "lobby-cms-backend",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, authHandler, cmsHandler, globalHandler, lobbyHandler, gameHandler, jwtManager)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zl.Info().Int("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then wait for the
	// background state writer to drain.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	zl.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error().Err(err).Msg("server shutdown error")
	}

	cmsService.Flush()
	zl.Info().Msg("state writes flushed, bye")
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Server.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
