package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"homeverse/server/config"
	"homeverse/server/internal/api"
	"homeverse/server/internal/database"
	"homeverse/server/internal/geometry"
	"homeverse/server/internal/locality"
	"homeverse/server/internal/metrics"
	"homeverse/server/internal/models"
	"homeverse/server/internal/pricing"
	"homeverse/server/internal/processor"
	"homeverse/server/internal/queue"
	"homeverse/server/internal/training"
	"homeverse/server/internal/valuation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithError(err).Warn("Invalid log level, using info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Train the valuation model before accepting requests
	synthesizer := training.NewSynthesizer(config.SupportedZones)
	model := valuation.NewModel(func() []models.TrainingSample {
		return synthesizer.Generate(cfg.Model.TrainingSamples, rand.New(rand.NewSource(cfg.Model.Seed)))
	}, valuation.Options{
		Trees:    cfg.Model.Trees,
		MaxDepth: cfg.Model.MaxDepth,
		Seed:     cfg.Model.Seed,
		Workers:  cfg.Model.Workers,
	}, logger)
	if err := model.Fit(); err != nil {
		logger.WithError(err).Fatal("Failed to train valuation model")
	}
	m.ObserveTraining(model.TrainingDuration(), model.SampleCount())

	resolver := locality.NewResolver(config.SupportedZones, config.Landmarks)
	services := api.Services{
		Calculator:   pricing.NewCalculator(resolver, model, logger),
		Model:        model,
		Resolver:     resolver,
		ZoneMap:      geometry.NewZoneMap(config.SupportedZones, config.Landmarks, logger),
		Metrics:      m,
		HistoryLimit: cfg.Database.HistoryLimit,
	}

	var batchProcessor *processor.BatchProcessor
	if cfg.Database.Path != "" {
		logger.Infof("Using database at: %s", cfg.Database.Path)
		db, err := database.NewDatabase(cfg.Database.Path, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize database")
		}
		defer db.Close()

		logger.Info("Running database migrations...")
		if err := db.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Failed to run database migrations")
		}

		valuationQueue := queue.NewValuationQueue(cfg.BatchProcessing.QueueSize, logger)
		batchProcessor = processor.NewBatchProcessor(db.GetDB(), valuationQueue, cfg, logger)
		batchProcessor.Start()

		services.History = db
		services.Recorder = valuationQueue
	} else {
		logger.Info("DATABASE_PATH not set, valuation history disabled")
	}

	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(services, logger)
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.NewRouter(handler, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
	if batchProcessor != nil {
		if err := batchProcessor.Stop(shutdownCtx); err != nil {
			logger.WithError(err).Error("Failed to flush valuation history")
		}
	}
}
