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

	"github.com/gin-gonic/gin"

	"videoh/database"
	"videoh/internal/config"
	"videoh/internal/http-api/handler"
	"videoh/internal/http-api/middleware"
	"videoh/internal/http-api/repository"
	"videoh/internal/http-api/service"
	"videoh/internal/logger"
	"videoh/internal/secrets"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	slogger := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// Resolve the database connection string. DATABASE_URL wins for local
	// development; deployments name a Secrets Manager secret instead.
	dsn := cfg.DatabaseURL
	if dsn == "" {
		secret, err := secrets.GetDBSecret(context.Background(), cfg.DBSecretName, cfg.AWSRegion)
		if err != nil {
			slogger.Error("failed to resolve database credentials", "error", err)
			os.Exit(1)
		}
		dsn = secret.ConnectionString()
	}

	db, err := database.Connect(dsn, cfg, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slogger.Error("failed to get database instance", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Repositories, services, handlers
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	commentService := service.NewCommentService(commentRepo)
	ratingService := service.NewRatingService(ratingRepo)

	commentHandler := handler.NewCommentHandler(commentService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(rateLimiter.Limit())

	r.GET("/check-conn", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/dev/api")
	api.Use(middleware.RequireClaims())
	commentHandler.RegisterRoutes(api)
	ratingHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		slogger.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Block until interrupted, then drain in-flight requests
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slogger.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slogger.Error("graceful shutdown failed", "error", err)
	}

	slogger.Info("server stopped")
}
