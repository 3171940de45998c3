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

	"fleetDispatch/app/echo-server/router"
	"fleetDispatch/business/drivers"
	"fleetDispatch/business/events"
	"fleetDispatch/business/learner"
	"fleetDispatch/business/loads"
	"fleetDispatch/business/scoring"
	"fleetDispatch/internal/middleware"
	psqlRepo "fleetDispatch/internal/repository/postgres"
	redisRepo "fleetDispatch/internal/repository/redis"
	"fleetDispatch/internal/rest"
	"fleetDispatch/pkg/config"
	"fleetDispatch/pkg/database"
	redisdb "fleetDispatch/pkg/database/redis"
	"fleetDispatch/pkg/logger"
	"fleetDispatch/pkg/metrics"

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
	logger.Info("Starting Fleet Dispatch Ranking API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer func() {
		_ = redisdb.CloseRedisClient(redisClient)
	}()

	metrics.Init()

	// Init repo
	eventRepo := psqlRepo.NewEventRepository(db)
	weightRepo := psqlRepo.NewWeightRepository(db)
	driverRepo := psqlRepo.NewDriverRepository(db)
	loadRepo := psqlRepo.NewLoadRepository(db)
	statsCache := redisRepo.NewStatsCache(
		redisClient,
		time.Duration(cfg.Learner.StatCacheTTLMinutes)*time.Minute,
	)

	// Init service
	eventsService := events.NewEventsService(eventRepo)
	learnerService := learner.NewLearnerService(eventRepo, weightRepo, statsCache, learner.Config{
		WeightFloor: cfg.Learner.WeightFloor,
		WeightCeil:  cfg.Learner.WeightCeil,
	})
	scoringService := scoring.NewScoringService(loadRepo, driverRepo, weightRepo, statsCache)
	driversService := drivers.NewDriversService(driverRepo)
	loadsService := loads.NewLoadsService(loadRepo)

	// Init handler
	eventsHandler := rest.NewEventsHandler(eventsService, statsCache)
	weightsHandler := rest.NewWeightsHandler(scoringService, learnerService)
	rankingHandler := rest.NewRankingHandler(scoringService)
	driversHandler := rest.NewDriversHandler(driversService)
	loadsHandler := rest.NewLoadsHandler(loadsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	dispatcherOnly := middleware.DispatcherOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupEventRoutes(api, eventsHandler, authRequired)
	router.SetupWeightRoutes(api, weightsHandler, authRequired, dispatcherOnly)
	router.SetupRankingRoutes(api, rankingHandler, authRequired)
	router.SetupDriverRoutes(api, driversHandler, authRequired, dispatcherOnly)
	router.SetupLoadRoutes(api, loadsHandler, authRequired, dispatcherOnly)

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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
