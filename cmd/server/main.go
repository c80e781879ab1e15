package main

import (
	"github.com/ikkim/cinestream-backend/config"
	"github.com/ikkim/cinestream-backend/internal/app/controller"
	"github.com/ikkim/cinestream-backend/internal/app/repository"
	"github.com/ikkim/cinestream-backend/internal/app/service"
	"github.com/ikkim/cinestream-backend/internal/db"
	"github.com/ikkim/cinestream-backend/internal/router"
	"github.com/ikkim/cinestream-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting CineStream Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	movieRepo := repository.NewMovieRepository(db.GetDB())

	// Initialize services
	movieService := service.NewMovieService(movieRepo)
	reviewService := service.NewReviewService(movieRepo)
	analyticsService := service.NewAnalyticsService(nil) // 기본 키워드 분류기 사용
	reportService := service.NewReportService()

	// Initialize controllers
	movieController := controller.NewMovieController(movieService)
	reviewController := controller.NewReviewController(reviewService)
	analyticsController := controller.NewAnalyticsController(movieService, analyticsService, reportService)

	// Setup router
	appRouter := router.NewRouter(
		movieController,
		reviewController,
		analyticsController,
		cfg,
	)
	engine := appRouter.Setup()

	// Start server
	logger.Info("Server listening", map[string]interface{}{
		"port": cfg.Server.Port,
	})
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}
