package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-jobly/internal/api/config"
	delivery "golang-jobly/internal/api/delivery/http"
	_ "golang-jobly/internal/api/docs"
	"golang-jobly/internal/api/event"
	"golang-jobly/internal/api/repository"
	"golang-jobly/internal/api/service"
	"golang-jobly/pkg/common"
	"golang-jobly/pkg/logger"
	"golang-jobly/pkg/postgres"
	"golang-jobly/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the jobs API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name), logger.Field("version", cfg.App.Version))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize the event publisher; without Redis, events are dropped
	var publisher event.Publisher = event.NopPublisher{}
	if cfg.Redis.Host != "" {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err := redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		maxLen := cfg.Redis.StreamMaxLen
		if maxLen == 0 {
			maxLen = common.RedisStreamMaxLenDefault
		}
		publisher = event.NewRedisStreamPublisher(redisClient.Client, maxLen)
	} else {
		appLogger.Warn("Redis host not configured, job events are disabled")
	}

	// Initialize repositories
	cacheExpiration, err := time.ParseDuration(cfg.Cache.DefaultExpiration)
	if err != nil {
		appLogger.Fatal("Invalid cache expiration", logger.ErrorField(err))
	}
	cacheCleanup, err := time.ParseDuration(cfg.Cache.CleanupInterval)
	if err != nil {
		appLogger.Fatal("Invalid cache cleanup interval", logger.ErrorField(err))
	}
	jobRepo := repository.NewJobRepository(db.DB)
	companyRepo := repository.NewCachedCompanyRepository(repository.NewCompanyRepository(db.DB), cacheExpiration, cacheCleanup)

	// Initialize services
	jobSvc := service.NewJobService(jobRepo, companyRepo, publisher, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	ipExtractor, err := delivery.IPExtractor(cfg.API.TrustedProxies)
	if err != nil {
		appLogger.Fatal("Invalid trusted proxies", logger.ErrorField(err))
	}
	e.IPExtractor = ipExtractor
	e.Use(middleware.Recover())
	e.Use(delivery.RequestID())
	e.Use(delivery.RequestLogger(appLogger))
	if cfg.API.RateLimitRPS > 0 {
		limiter := delivery.NewRateLimiter(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst)
		go limiter.Run(ctx.Done(), time.Minute)
		e.Use(limiter.Middleware())
	}

	// Initialize handlers and routes
	jobHandler := delivery.NewJobHandler(jobSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	jobHandler.RegisterRoutes(apiV1.Group("/jobs"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Jobly Jobs API
// @version 1.0
// @description Create, search, update and delete job postings.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
