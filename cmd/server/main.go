package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/workout-tracker/internal/advisor"
	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/speech"
	"alcyxob/workout-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// @title Workout Tracker API
// @version 1.0
// @description Workout log, readiness heuristics, plans and a voiced morning coach.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Infof("starting workout tracker, storage backend: %s", cfg.Storage.Backend)
	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, remote recommendations and voice will fail")
	}

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("workout", "server", reg)

	// --- Storage ---
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	repo, err := storage.Open(startCtx, cfg)
	if err != nil {
		cancelStart()
		log.Fatalf("could not open %s storage: %s", cfg.Storage.Backend, err)
	}

	// --- Services ---
	workoutService, err := service.NewWorkoutService(startCtx, repo, service.WorkoutStoreOptions{
		Key:     cfg.Storage.Key,
		Seed:    cfg.Storage.Seed,
		Metrics: metricsManager,
	})
	cancelStart()
	if err != nil {
		log.Fatalf("could not load workout log: %s", err)
	}

	recommendationService := service.NewRecommendationService(
		advisor.NewOpenAIAdvisor(cfg.OpenAI, cfg.Coach.Name),
		service.RecommendationOptions{HistoryCap: cfg.Coach.HistoryCap, Metrics: metricsManager},
	)
	speaker := speech.NewCachedSpeaker(speech.NewOpenAISpeaker(cfg.OpenAI), cfg.Voice.CacheSizeMB, cfg.Voice.CacheTTL)
	coachService := service.NewCoachService(workoutService, recommendationService, speaker, cfg.Coach.Name, metricsManager)

	// --- Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, api.Services{
		Workouts:        workoutService,
		Recommendations: recommendationService,
		Coach:           coachService,
	}, metricsManager, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	err = multierr.Combine(
		server.Shutdown(ctxShutdown),
		repo.Close(ctxShutdown),
	)
	if err != nil {
		log.Errorf("unclean shutdown: %s", err)
		os.Exit(1)
	}
	log.Info("server exiting")
}
