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

	"nutrimatch/app/echo-server/router"
	"nutrimatch/business/interaction"
	"nutrimatch/business/recommender"
	"nutrimatch/internal/middleware"
	"nutrimatch/internal/repository/dataset"
	psqlRepo "nutrimatch/internal/repository/postgres"
	"nutrimatch/internal/rest"
	"nutrimatch/pkg/config"
	"nutrimatch/pkg/database"
	"nutrimatch/pkg/logger"
	"nutrimatch/pkg/metrics"
	"nutrimatch/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting NutriMatch", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Nutrition dataset: loaded once, immutable for the process lifetime
	loaded, err := dataset.LoadNutritionCSV(cfg.Dataset.NutritionPath)
	if err != nil {
		logger.Fatal("Failed to load nutrition dataset", "error", err)
	}

	metrics.DatasetRowsDropped.Set(float64(loaded.DroppedRows))
	logger.Info("Nutrition dataset loaded",
		"foods", len(loaded.Foods),
		"dropped_rows", loaded.DroppedRows,
	)

	featureIndex := recommender.NewFeatureIndex(loaded.Foods)
	if featureIndex.Len() == 0 {
		logger.Fatal("Nutrition dataset has no usable rows")
	}

	// Init repo
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	recLogRepo := psqlRepo.NewRecommendationLogRepository(db)

	// Init service
	interactionService := interaction.NewService(interactionRepo)
	recommenderService := recommender.NewService(featureIndex, interactionService, recLogRepo)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommenderService, interactionService)
	profileHandler := rest.NewProfileHandler(recommenderService, interactionService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Ops endpoints
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendationHandler)
	router.SetProfileRoutes(api, profileHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
