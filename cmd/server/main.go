package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ekrsw/knowledge-app-sub000/internal/config"
	"github.com/ekrsw/knowledge-app-sub000/internal/handler"
	"github.com/ekrsw/knowledge-app-sub000/internal/infrastructure/database"
	"github.com/ekrsw/knowledge-app-sub000/internal/logger"
	"github.com/ekrsw/knowledge-app-sub000/internal/metrics"
	"github.com/ekrsw/knowledge-app-sub000/internal/middleware"
	"github.com/ekrsw/knowledge-app-sub000/internal/notification"
	"github.com/ekrsw/knowledge-app-sub000/internal/repository"
	"github.com/ekrsw/knowledge-app-sub000/internal/service"
	"github.com/ekrsw/knowledge-app-sub000/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize stores
	articleStore := repository.NewPostgresArticleStore(pool)
	revisionStore := repository.NewPostgresRevisionStore(pool)
	userDirectory := repository.NewPostgresUserDirectory(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Notifications are delivered asynchronously; the log sink is the
	// default delivery channel.
	dispatcher := notification.NewDispatcher(notification.NewLogSink(), cfg.NotificationQueueSize)

	// Initialize services
	revisionService := service.NewRevisionService(
		articleStore,
		revisionStore,
		userDirectory,
		dispatcher,
		v,
	)
	queueService := service.NewQueueService(
		articleStore,
		revisionStore,
		userDirectory,
		service.QueueConfig{
			PendingCeiling: cfg.QueuePendingCeiling,
			PendingHigh:    cfg.QueuePendingHigh,
			DefaultLimit:   cfg.QueueDefaultLimit,
		},
	)

	// Initialize handlers
	revisionHandler := handler.NewRevisionHandler(revisionService)
	queueHandler := handler.NewQueueHandler(queueService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Revision workflow routes
		revisions := v1.Group("/revisions")
		{
			revisions.POST("", revisionHandler.CreateRevision)
			revisions.GET("/compare", revisionHandler.CompareRevisions)
			revisions.POST("/decisions", revisionHandler.BulkDecide)
			revisions.PUT("/:id", revisionHandler.UpdateRevision)
			revisions.DELETE("/:id", revisionHandler.DeleteRevision)
			revisions.POST("/:id/submit", revisionHandler.SubmitRevision)
			revisions.POST("/:id/withdraw", revisionHandler.WithdrawRevision)
			revisions.POST("/:id/decision", revisionHandler.DecideRevision)
			revisions.GET("/:id/diff", revisionHandler.GetDiff)
			revisions.GET("/:id/diff/summary", revisionHandler.GetDiffSummary)
		}

		// Approval queue routes
		queue := v1.Group("/queue")
		{
			queue.GET("", queueHandler.GetQueue)
			queue.GET("/workload", queueHandler.GetWorkload)
			queue.GET("/metrics", queueHandler.GetMetrics)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server first so no new notifications are queued.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Drain pending notifications
	logger.Info("Closing notification dispatcher")
	dispatcher.Close()

	logger.Info("Server exited")
}
