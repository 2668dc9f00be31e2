package pricing

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"homeverse/server/config"
	"homeverse/server/internal/investment"
	"homeverse/server/internal/locality"
	"homeverse/server/internal/models"
	"homeverse/server/internal/valuation"
)

const (
	DefaultBedrooms = 2
	DefaultArea     = 1000.0
	// Floor assumed when the description does not mention one
	DefaultFloor = 1
)

// Predictor is the trained valuation model as seen by the calculator
type Predictor interface {
	Predict(fv models.FeatureVector) (valuation.Prediction, error)
	SampleCount() int
}

// Calculator turns property descriptions into priced valuations
type Calculator struct {
	resolver  *locality.Resolver
	predictor Predictor
	logger    *logrus.Logger
	now       func() time.Time
}

func NewCalculator(resolver *locality.Resolver, predictor Predictor, logger *logrus.Logger) *Calculator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Calculator{
		resolver:  resolver,
		predictor: predictor,
		logger:    logger,
		now:       time.Now,
	}
}

// Price values a single property
func (c *Calculator) Price(desc models.PropertyDescription) (*models.ValuationResult, error) {
	area, err := areaOf(desc)
	if err != nil {
		return nil, err
	}
	typeMult, err := multiplierOf("propertyType", desc.PropertyType, config.PropertyTypes)
	if err != nil {
		return nil, err
	}
	ageMult, err := multiplierOf("buildingAge", desc.BuildingAge, config.BuildingAges)
	if err != nil {
		return nil, err
	}

	match := c.resolver.Resolve(desc.Location)
	zoneIdx := config.ZoneIndex(match.Zone)
	if zoneIdx < 0 {
		return nil, fmt.Errorf("failed to price property: resolved unknown zone %q", match.Zone)
	}
	zone := &config.SupportedZones[zoneIdx]

	bedrooms, ok := desc.Bedrooms.Count()
	if !ok {
		bedrooms = DefaultBedrooms
	}

	var fv models.FeatureVector
	fv[models.FeatureZone] = float64(zoneIdx)
	fv[models.FeatureBedrooms] = float64(bedrooms)
	fv[models.FeatureArea] = area
	fv[models.FeaturePropertyType] = typeMult
	fv[models.FeatureAge] = ageMult
	fv[models.FeatureFloor] = float64(floorOf(desc.Floor))
	fv[models.FeatureAmenities] = float64(len(desc.Amenities))

	prediction, err := c.predictor.Predict(fv)
	if err != nil {
		return nil, fmt.Errorf("failed to predict price: %w", err)
	}

	costs := amenityCosts(desc.Amenities)
	final := decimal.NewFromFloat(prediction.Price).Add(costs).Truncate(0)
	perSqft := final.Div(decimal.NewFromFloat(area)).Truncate(0)

	importance := make(map[string]float64, len(prediction.Importance))
	for name, v := range prediction.Importance {
		importance[name] = investment.Round2(v * 100)
	}

	var matched *string
	if match.Matched() {
		label := match.Label
		matched = &label
	}

	c.logger.WithFields(logrus.Fields{
		"zone":       zone.ID,
		"confidence": match.Confidence,
		"price":      final.IntPart(),
	}).Debug("Property priced")

	return &models.ValuationResult{
		Price:        final.IntPart(),
		PricePerSqft: perSqft.IntPart(),
		Breakdown: models.Breakdown{
			BaseRate:          zone.BaseRate,
			MLPrediction:      decimal.NewFromFloat(prediction.Price).Truncate(0).IntPart(),
			AdditionalCosts:   costs.Truncate(0).IntPart(),
			FeatureImportance: importance,
		},
		ZoneInfo: models.ZoneInfo{
			DetectedZone:    zone.ID,
			ZoneName:        zone.Name,
			Confidence:      string(match.Confidence),
			MatchedLocality: matched,
			GrowthRate:      zone.GrowthRate,
			DemandIndex:     zone.DemandIndex,
		},
		MLInsights: models.ModelInsights{
			ModelUsed:   valuation.ModelName,
			Accuracy:    valuation.ClaimedAccuracy,
			DataPoints:  c.predictor.SampleCount(),
			LastUpdated: c.now().Format("2006-01-02"),
		},
	}, nil
}

// Compare prices every description concurrently and summarizes the results.
// Valuations are returned in input order; any failure fails the comparison.
func (c *Calculator) Compare(ctx context.Context, descs []models.PropertyDescription) (*models.Comparison, error) {
	if len(descs) == 0 {
		return nil, models.NewInvalidInput("properties", "at least one property is required")
	}

	results := make([]*models.ValuationResult, len(descs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range descs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := c.Price(descs[i])
			if err != nil {
				return fmt.Errorf("property %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparisons := make([]models.ComparedProperty, len(descs))
	prices := make([]int64, len(descs))
	labels := make([]string, len(descs))
	for i, desc := range descs {
		comparisons[i] = models.ComparedProperty{Property: desc, Prediction: results[i]}
		prices[i] = results[i].Price
		labels[i] = desc.Location
	}

	insight, err := investment.CompareInsight(prices, labels)
	if err != nil {
		return nil, err
	}
	return &models.Comparison{Comparisons: comparisons, Insights: insight}, nil
}

func areaOf(desc models.PropertyDescription) (float64, error) {
	if desc.Sqft == nil {
		return DefaultArea, nil
	}
	area := *desc.Sqft
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return 0, models.NewInvalidInput("sqft", "area must be a positive number")
	}
	return area, nil
}

// multiplierOf prefers an explicit multiplier, then the catalog entry named by
// id, then 1.0.
func multiplierOf(field string, m *models.Multiplier, catalog []config.Option) (float64, error) {
	if m == nil {
		return 1.0, nil
	}
	if m.Multiplier != nil {
		v := *m.Multiplier
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return 0, models.NewInvalidInput(field, "multiplier must be a positive number")
		}
		return v, nil
	}
	if opt := config.FindOption(catalog, m.ID); opt != nil {
		return opt.Multiplier, nil
	}
	return 1.0, nil
}

func floorOf(f models.FloorValue) int {
	switch {
	case !f.Present:
		return DefaultFloor
	case !f.Valid:
		return 0
	default:
		return f.Number
	}
}

func amenityCosts(amenities []models.AmenityRequest) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amenities {
		if a.Price != nil {
			total = total.Add(decimal.NewFromFloat(*a.Price))
		}
	}
	return total
}
