// File: mentorlink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorlink/config"
	"mentorlink/database"
	bookingRepoPkg "mentorlink/database/repository/booking"
	mentorRepoPkg "mentorlink/database/repository/mentor"
	"mentorlink/handlers"
	"mentorlink/middleware"
	"mentorlink/routes"
	"mentorlink/services/analytics"
	"mentorlink/services/report"
	"mentorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := database.Database(mongoClient)
	logger.Info("Connected to MongoDB", zap.String("database", db.Name()))

	// The auth cache is optional; without it every request is checked against the store.
	authCache, err := utils.NewAuthCache(rootCtx)
	if err != nil {
		logger.Warn("main: auth cache unavailable, continuing without it", zap.Error(err))
		authCache = nil
	}

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	mentorRepo := mentorRepoPkg.NewMongoMentorRepo(db)

	if err := bookingRepo.EnsureIndexes(rootCtx); err != nil {
		logger.Warn("main: failed to ensure booking indexes", zap.Error(err))
	}

	// services.
	analyticsService := analytics.NewDefaultAnalyticsService(bookingRepo, mentorRepo)
	exportService := report.NewDefaultExportService(
		bookingRepo,
		mentorRepo,
		report.NewPDFCompiler(config.AppConfig.ReportCompress),
	)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, exportService, config.AppConfig.RequestTimeout)

	health := utils.NewHealthMonitor(mongoClient, authCache, 30*time.Second)
	health.Start(rootCtx)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		MentorRepo: mentorRepo,
		AuthCache:  authCache,
		Health:     health,

		// Analytics endpoints.
		GetAnalyticsSummary: analyticsHandler.GetSummary,
		ExportReport:        analyticsHandler.ExportReport,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	if authCache != nil {
		_ = authCache.Close()
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
