package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	appLogger "github.com/wanderroute/go-itinerary-planner/app/logger"
	"github.com/wanderroute/go-itinerary-planner/app/observability/metrics"
	"github.com/wanderroute/go-itinerary-planner/app/tracer"
	"github.com/wanderroute/go-itinerary-planner/config"
	"github.com/wanderroute/go-itinerary-planner/internal/api/catalog"
	"github.com/wanderroute/go-itinerary-planner/internal/api/directions"
	generativeAI "github.com/wanderroute/go-itinerary-planner/internal/api/generative_ai"
	"github.com/wanderroute/go-itinerary-planner/internal/api/planner"
	api "github.com/wanderroute/go-itinerary-planner/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics(cfg.Server.MetricsPort)
	metrics.InitAppMetrics()

	// --- Dependency Injection ---
	repo := catalog.NewInMemoryRepository()
	catalogHandler := catalog.NewHandler(repo, logger)

	var geocoder planner.Geocoder
	var directionsProvider planner.DirectionsProvider
	if amapKey := os.Getenv("AMAP_API_KEY"); amapKey != "" {
		amapClient := directions.NewAMapClient(cfg.Directions.BaseURL, amapKey, cfg.Directions.Timeout, logger)
		geocoder = amapClient
		directionsProvider = amapClient
	} else {
		logger.Warn("AMAP_API_KEY not set, plans will use fallback routing only")
	}

	var extractor planner.TagExtractor
	if geminiKey := os.Getenv("GOOGLE_GEMINI_API_KEY"); geminiKey != "" {
		geminiExtractor, err := generativeAI.NewGeminiExtractor(ctx, geminiKey, cfg.Gemini.Model, logger)
		if err != nil {
			logger.Warn("Failed to create Gemini extractor, using keyword inference only", slog.Any("error", err))
		} else {
			extractor = geminiExtractor
		}
	} else {
		logger.Warn("GOOGLE_GEMINI_API_KEY not set, using keyword inference only")
	}

	plannerService := planner.NewServiceImpl(repo, directionsProvider, geocoder, extractor, logger)
	plannerHandler := planner.NewHandler(plannerService, logger)

	// --- Router Setup ---
	mainRouter := api.SetupRouter(&api.Config{
		PlannerHandler: plannerHandler,
		CatalogHandler: catalogHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server graceful shutdown: %w", err)
		}
		logger.Info("HTTP server gracefully stopped")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
