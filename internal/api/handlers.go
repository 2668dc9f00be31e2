package api

import (
	"errors"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"homeverse/server/config"
	"homeverse/server/internal/database"
	"homeverse/server/internal/geometry"
	"homeverse/server/internal/locality"
	"homeverse/server/internal/metrics"
	"homeverse/server/internal/models"
	"homeverse/server/internal/pricing"
)

// ModelStatus reports whether the valuation model has been fitted
type ModelStatus interface {
	IsTrained() bool
}

// HistoryStore reads recorded valuations
type HistoryStore interface {
	GetRecentValuations(limit int, zone string) ([]models.ValuationRecord, error)
	GetZoneValuationStats(zone string) (*models.ZoneValuationStats, error)
}

// Recorder accepts valuations for asynchronous persistence
type Recorder interface {
	Push(records []*models.ValuationRecord) error
}

// Services are the collaborators the handlers call into. History and Recorder
// are nil when persistence is disabled.
type Services struct {
	Calculator   *pricing.Calculator
	Model        ModelStatus
	Resolver     *locality.Resolver
	ZoneMap      *geometry.ZoneMap
	Metrics      *metrics.Metrics
	History      HistoryStore
	Recorder     Recorder
	HistoryLimit int
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	now      func() time.Time

	// Simulated transaction counts in market data
	mu  sync.Mutex
	rng *rand.Rand
}

var errHistoryDisabled = errors.New("valuation history is disabled")

var endpoints = []string{
	"/predict",
	"/predict-ml",
	"/zones",
	"/landmarks",
	"/market-trends",
	"/compare",
	"/historical-data",
	"/investment-analysis",
	"/roi-calculator",
	"/emi-calculator",
	"/resolve-zone",
	"/catalog",
	"/history",
	"/map",
}

func NewHandler(services Services, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if services.HistoryLimit <= 0 {
		services.HistoryLimit = database.DefaultHistoryLimit
	}

	return &Handler{
		services: services,
		logger:   logger,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Homeverse AI API v2.0",
		"status":     "running",
		"ml_enabled": h.services.Model.IsTrained(),
		"endpoints":  endpoints,
	})
}

// Predict values a single property
func (h *Handler) Predict(c *gin.Context) {
	var desc models.PropertyDescription
	if err := bindJSON(c, &desc); err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.services.Calculator.Price(desc)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.observe(desc, result)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"prediction": result,
		"timestamp":  h.now().Format(time.RFC3339),
	})
}

type compareRequest struct {
	Properties []models.PropertyDescription `json:"properties"`
}

func (h *Handler) Compare(c *gin.Context) {
	var req compareRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	comparison, err := h.services.Calculator.Compare(c.Request.Context(), req.Properties)
	if err != nil {
		h.respondError(c, err)
		return
	}
	for _, cmp := range comparison.Comparisons {
		h.observe(cmp.Property, cmp.Prediction)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"comparisons": comparison.Comparisons,
		"insights":    comparison.Insights,
	})
}

func (h *Handler) ResolveZone(c *gin.Context) {
	match := h.services.Resolver.Resolve(c.Query("location"))
	zone := config.GetZoneOrDefault(match.Zone)

	var matched *string
	if match.Matched() {
		matched = &match.Label
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"zone":       zone.ID,
		"zoneName":   zone.Name,
		"confidence": match.Confidence,
		"matched":    matched,
		"matchKind":  match.Kind,
	})
}

func (h *Handler) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"zones":   config.SupportedZones,
	})
}

func (h *Handler) ListLandmarks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"landmarks": config.GetLandmarkNames(),
	})
}

func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"propertyTypes": config.PropertyTypes,
		"buildingAges":  config.BuildingAges,
		"amenities":     config.Amenities,
	})
}

// observe updates metrics and queues the valuation for the history
func (h *Handler) observe(desc models.PropertyDescription, result *models.ValuationResult) {
	if h.services.Metrics != nil {
		h.services.Metrics.ObserveValuation(result.ZoneInfo.DetectedZone, result.ZoneInfo.Confidence, result.Price)
	}
	if h.services.Recorder == nil {
		return
	}

	record := newValuationRecord(desc, result, h.now())
	if err := h.services.Recorder.Push([]*models.ValuationRecord{record}); err != nil {
		if h.services.Metrics != nil {
			h.services.Metrics.HistoryDropped.Inc()
		}
		h.logger.WithError(err).WithField("zone", record.Zone).Warn("Failed to queue valuation for history")
	}
}

func newValuationRecord(desc models.PropertyDescription, result *models.ValuationResult, now time.Time) *models.ValuationRecord {
	bedrooms, ok := desc.Bedrooms.Count()
	if !ok {
		bedrooms = pricing.DefaultBedrooms
	}
	sqft := pricing.DefaultArea
	if desc.Sqft != nil {
		sqft = *desc.Sqft
	}

	return &models.ValuationRecord{
		ID:           uuid.NewString(),
		Location:     desc.Location,
		Zone:         result.ZoneInfo.DetectedZone,
		Confidence:   result.ZoneInfo.Confidence,
		Bedrooms:     bedrooms,
		Sqft:         sqft,
		Price:        result.Price,
		PricePerSqft: result.PricePerSqft,
		MLPrediction: result.Breakdown.MLPrediction,
		CreatedAt:    now,
	}
}

// bindJSON decodes the request body, reporting malformed input as invalid
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return models.NewInvalidInput("request body", err.Error())
	}
	return nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := "internal"
	message := "internal server error"

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
		kind = "invalid_input"
		message = err.Error()
	case errors.Is(err, errHistoryDisabled):
		status = http.StatusServiceUnavailable
		kind = "unavailable"
		message = err.Error()
	}

	entry := h.logger.WithError(err).WithFields(logrus.Fields{
		"route":  c.FullPath(),
		"status": status,
	})
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}
	if h.services.Metrics != nil {
		h.services.Metrics.RequestErrors.WithLabelValues(c.FullPath(), kind).Inc()
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}
