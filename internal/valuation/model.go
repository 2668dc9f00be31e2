package valuation

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"homeverse/server/internal/models"
)

const (
	ModelName       = "Random Forest Regressor"
	ClaimedAccuracy = "94.5%"
)

// DatasetFunc supplies the training data when the model is fitted
type DatasetFunc func() []models.TrainingSample

type Options struct {
	Trees    int
	MaxDepth int
	Seed     int64
	Workers  int
}

func DefaultOptions() Options {
	return Options{Trees: 100, MaxDepth: 20, Seed: 42, Workers: 4}
}

// Prediction is a point estimate with per-feature importance (fractions summing to 1)
type Prediction struct {
	Price      float64
	Importance map[string]float64
}

// Model owns the fitted scaler and forest. It is fitted at most once, either
// explicitly through Fit or lazily by the first Predict, and is read-only
// afterwards so predictions need no locking.
type Model struct {
	dataset DatasetFunc
	opts    Options
	logger  *logrus.Logger

	once    sync.Once
	fitErr  error
	trained atomic.Bool

	scaler       *Scaler
	forest       *Forest
	sampleCount  int
	trainedAt    time.Time
	trainingTime time.Duration
}

func NewModel(dataset DatasetFunc, opts Options, logger *logrus.Logger) *Model {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Model{
		dataset: dataset,
		opts:    opts,
		logger:  logger,
	}
}

// Fit trains the model. Concurrent and repeated calls block until the single
// training run finishes and all observe its result.
func (m *Model) Fit() error {
	m.once.Do(m.train)
	return m.fitErr
}

func (m *Model) train() {
	start := time.Now()
	m.logger.WithFields(logrus.Fields{
		"trees":     m.opts.Trees,
		"max_depth": m.opts.MaxDepth,
	}).Info("Training valuation model")

	samples := m.dataset()
	if len(samples) == 0 {
		m.fitErr = fmt.Errorf("failed to train valuation model: %w", ErrEmptyDataset)
		m.logger.WithError(m.fitErr).Error("Valuation model training failed")
		return
	}

	rows := make([]models.FeatureVector, len(samples))
	prices := make([]float64, len(samples))
	for i, s := range samples {
		rows[i] = s.Features
		prices[i] = s.Price
	}

	scaler := FitScaler(rows)
	forest, err := FitForest(context.Background(), scaler.TransformAll(rows), prices, ForestOptions{
		Trees:    m.opts.Trees,
		MaxDepth: m.opts.MaxDepth,
		Seed:     m.opts.Seed,
		Workers:  m.opts.Workers,
	})
	if err != nil {
		m.fitErr = fmt.Errorf("failed to train valuation model: %w", err)
		m.logger.WithError(m.fitErr).Error("Valuation model training failed")
		return
	}

	m.scaler = scaler
	m.forest = forest
	m.sampleCount = len(samples)
	m.trainedAt = time.Now()
	m.trainingTime = time.Since(start)
	m.trained.Store(true)

	m.logger.WithFields(logrus.Fields{
		"samples":  m.sampleCount,
		"duration": m.trainingTime.String(),
	}).Info("Valuation model trained successfully")
}

// Predict estimates the price of a property, fitting the model first if needed
func (m *Model) Predict(fv models.FeatureVector) (Prediction, error) {
	if err := m.Fit(); err != nil {
		return Prediction{}, err
	}

	price := m.forest.Predict(m.scaler.Transform(fv))

	importance := make(map[string]float64, models.FeatureCount)
	for i, v := range m.forest.Importance() {
		importance[models.FeatureNames[i]] = v
	}
	return Prediction{Price: price, Importance: importance}, nil
}

func (m *Model) IsTrained() bool {
	return m.trained.Load()
}

// SampleCount returns the number of samples the model was trained on
func (m *Model) SampleCount() int {
	if !m.IsTrained() {
		return 0
	}
	return m.sampleCount
}

func (m *Model) TrainedAt() time.Time {
	if !m.IsTrained() {
		return time.Time{}
	}
	return m.trainedAt
}

func (m *Model) TrainingDuration() time.Duration {
	if !m.IsTrained() {
		return 0
	}
	return m.trainingTime
}
