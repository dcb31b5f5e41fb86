// Package main is the entry point for the flight deals service.
//
//	@title						Syria Flight Deals API
//	@version					1.0.0
//	@description				Flight deals, price calendars and live fare search for flights from and to Damascus and Aleppo.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-deals/syria-flight-deals/docs"

	"github.com/flight-deals/syria-flight-deals/internal/config"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/cache"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/logger"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/retry"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/timeutil"

	// Application layers
	"github.com/flight-deals/syria-flight-deals/internal/adapter/dataset/file"
	datasetmongo "github.com/flight-deals/syria-flight-deals/internal/adapter/dataset/mongo"
	"github.com/flight-deals/syria-flight-deals/internal/adapter/geo"
	flighthttp "github.com/flight-deals/syria-flight-deals/internal/adapter/http"
	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/middleware"
	"github.com/flight-deals/syria-flight-deals/internal/adapter/searchapi"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/usecase"
)

const connectTimeout = 10 * time.Second

// closer releases a backend on shutdown.
type closer func(ctx context.Context) error

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := logger.New(cfg.Logging)
	appLog.SetGlobal()

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("hub", cfg.App.HubAirport).
		Str("dataset", cfg.Dataset.Driver).
		Str("cache", cfg.Cache.Driver).
		Bool("live_search", cfg.LiveSearchEnabled()).
		Msg("Configuration loaded")

	if !cfg.LiveSearchEnabled() {
		log.Warn().Msg("SEARCHAPI_API_KEY is not set; live search endpoints will answer with a configuration error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	dataset, closeDataset, err := setupDataset(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to open flight dataset")
	}
	store, closeCache, err := setupCache(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, appLog.Logger)

	// Setup routes
	setupRoutes(e, cfg, appLog, dataset, store)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cfg.Server.ShutdownTimeout, closeCache, closeDataset)
}

// setupDataset opens the flight dataset selected by DATASET_DRIVER.
func setupDataset(ctx context.Context, cfg *config.Config) (domain.FlightDataset, closer, error) {
	switch cfg.Dataset.Driver {
	case config.DatasetDriverMongo:
		store, err := datasetmongo.Connect(ctx, cfg.Dataset.MongoURI, cfg.Dataset.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Dataset.MongoDatabase).Msg("Using MongoDB flight dataset")
		return store, store.Close, nil
	default:
		log.Info().Str("path", cfg.Dataset.File).Msg("Using file flight dataset")
		return file.NewStore(cfg.Dataset.File), nil, nil
	}
}

// setupCache opens the query cache selected by CACHE_DRIVER.
func setupCache(ctx context.Context, cfg *config.Config) (cache.Cache, closer, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		store, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:      cfg.Cache.RedisAddr,
			Password:  cfg.Cache.RedisPassword,
			DB:        cfg.Cache.RedisDB,
			KeyPrefix: cfg.Cache.RedisPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using Redis cache")
		return store, func(context.Context) error { return store.Close() }, nil
	default:
		return cache.NewMemory(nil), nil, nil
	}
}

// setupRoutes wires the use cases into the HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, appLog *logger.Logger, dataset domain.FlightDataset, store cache.Cache) {
	retryCfg := retry.UpstreamConfig
	retryCfg.MaxAttempts = cfg.SearchAPI.RetryAttempts

	searcher := searchapi.NewClient(searchapi.Config{
		BaseURL:       cfg.SearchAPI.BaseURL,
		APIKey:        cfg.SearchAPI.APIKey,
		Timeout:       cfg.SearchAPI.Timeout,
		RatePerSecond: cfg.SearchAPI.RatePerSecond,
		Retry:         retryCfg,
	}, appLog.Logger)

	dealsUseCase := usecase.NewDealsUseCase(dataset, store, usecase.DealsConfig{
		Hub:      cfg.App.HubAirport,
		CacheTTL: cfg.Cache.TTL,
	}, appLog.Logger)
	liveUseCase := usecase.NewLiveSearchUseCase(searcher, store, cfg.Cache.TTL, appLog.Logger)

	locator := geo.NewHeaderLocator(cfg.App.HubAirport, cfg.App.ExploreAirports)

	handler := flighthttp.NewHandler(dealsUseCase, liveUseCase, locator, timeutil.NewRealClock(), flighthttp.Config{
		Hub:               cfg.App.HubAirport,
		LiveSearchEnabled: cfg.LiveSearchEnabled(),
		ExploreAirports:   cfg.App.ExploreAirports,
	})
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, timeout time.Duration, closers ...closer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c(ctx); err != nil {
			log.Error().Err(err).Msg("Error closing backend")
		}
	}

	log.Info().Msg("Server stopped")
}
