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

	"curatorMarket/app/echo-server/router"
	"curatorMarket/business/catalog"
	"curatorMarket/business/customer"
	"curatorMarket/business/purchase"
	"curatorMarket/business/recommender"
	"curatorMarket/business/review"
	"curatorMarket/business/snapshot"
	"curatorMarket/internal/middleware"
	psqlRepo "curatorMarket/internal/repository/postgres"
	"curatorMarket/internal/rest"
	"curatorMarket/pkg/config"
	"curatorMarket/pkg/database"
	"curatorMarket/pkg/logger"
	"curatorMarket/pkg/metrics"
	"curatorMarket/pkg/serializer"
	"curatorMarket/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	logger.Info("Starting CuratorMarket", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database handle", "error", err)
	}

	// Init validate
	validate := validator.New()

	// Init repo
	customerRepo := psqlRepo.NewCustomerRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	itemRepo := psqlRepo.NewItemRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	purchaseRepo := psqlRepo.NewPurchaseRepository(db)
	snapshotRepo := psqlRepo.NewSnapshotRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)

	// Init service
	customerService := customer.NewCustomerService(customerRepo, validate)
	catalogService := catalog.NewCatalogService(categoryRepo, itemRepo)
	reviewService := review.NewReviewService(reviewRepo, itemRepo)
	purchaseService := purchase.NewPurchaseService(purchaseRepo, itemRepo)
	snapshotService := snapshot.NewService(snapshotRepo)
	recommendService := recommender.NewService(recommendationRepo, customerRepo)

	if cfg.Recommend.RefreshSnapshotOnBoot {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if _, err := snapshotService.Refresh(ctx); err != nil {
			logger.Error("Initial snapshot refresh failed", "error", err)
		}
		cancel()
	}

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendService, snapshotService, cfg.Recommend.DefaultK, cfg.Recommend.MaxK)
	snapshotHandler := rest.NewSnapshotHandler(snapshotService)
	customerHandler := rest.NewCustomerHandler(customerService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	reviewHandler := rest.NewReviewHandler(reviewService)
	purchaseHandler := rest.NewPurchaseHandler(purchaseService)
	healthHandler := rest.NewHealthHandler(sqlDB)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = serializer.JSONSerializer{}

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(middleware.RequestMetrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderRequestID},
	}))

	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	rateLimit := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if cfg.Server.RateLimit > 0 {
		rateLimit = echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit)))
	}

	e.GET("/healthz", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired, rateLimit)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetupReviewRoutes(api, reviewHandler, authRequired)
	router.SetupPurchaseRoutes(api, purchaseHandler, authRequired)
	router.SetupAdminRoutes(api, authRequired, adminOnly, recommendationHandler, snapshotHandler, customerHandler, catalogHandler)

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

	if err := sqlDB.Close(); err != nil {
		logger.Error("Database close error", "error", err)
	}

	logger.Info("Server stopped")
}
