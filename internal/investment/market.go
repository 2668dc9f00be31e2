package investment

import (
	"math"
	"math/rand"
	"time"

	"homeverse/server/config"
	"homeverse/server/internal/models"
)

const (
	trendMonths        = 12
	forecastConfidence = 87.5
	topLocalities      = 3
)

// MarketTrends summarizes a zone's market. The monthly series discounts the
// current base rate linearly by growth/1200 per month; transaction counts are
// simulated from rng.
func MarketTrends(zoneID string, now time.Time, rng *rand.Rand) *models.MarketTrends {
	zone := config.GetZoneOrDefault(zoneID)
	base := float64(zone.BaseRate)

	historical := make([]models.MonthlyPrice, 0, trendMonths)
	for i := trendMonths; i > 0; i-- {
		price := base * (1 - float64(i)*zone.GrowthRate/1200)
		historical = append(historical, models.MonthlyPrice{
			Month:        now.AddDate(0, 0, -30*i).Format("2006-01"),
			AvgPrice:     truncate(price),
			Transactions: 50 + rng.Intn(100),
		})
	}

	top := zone.Localities
	if len(top) > topLocalities {
		top = top[:topLocalities]
	}

	return &models.MarketTrends{
		Zone:            zone.ID,
		ZoneName:        zone.Name,
		CurrentAvgPrice: zone.BaseRate,
		YearlyGrowth:    zone.GrowthRate,
		QuarterlyGrowth: Round2(zone.GrowthRate / 4),
		DemandIndex:     zone.DemandIndex,
		SupplyIndex:     zone.SupplyIndex,
		PriceRange: models.PriceRange{
			Min: truncate(base * 0.8),
			Max: truncate(base * 1.3),
		},
		TopLocalities: append([]string(nil), top...),
		Historical:    historical,
		Forecast: models.Forecast{
			Next6Months:  truncate(base * (1 + zone.GrowthRate/200)),
			Next12Months: truncate(base * (1 + zone.GrowthRate/100)),
			Confidence:   forecastConfidence,
		},
	}
}

// HistoricalSeries returns one row per past year, oldest first, discounting the
// current base rate by (1+growth)^years.
func HistoricalSeries(zoneID string, years int, now time.Time, rng *rand.Rand) ([]models.YearlyPrice, error) {
	if years <= 0 || years > MaxYears {
		return nil, models.NewInvalidInput("years", "must be between 1 and 50")
	}

	zone := config.GetZoneOrDefault(zoneID)
	base := float64(zone.BaseRate)
	growth := zone.GrowthRate / 100

	series := make([]models.YearlyPrice, 0, years)
	for y := years; y > 0; y-- {
		price := base / math.Pow(1+growth, float64(y))
		series = append(series, models.YearlyPrice{
			Year:         now.Year() - y,
			AvgPrice:     truncate(price),
			MinPrice:     truncate(price * 0.85),
			MaxPrice:     truncate(price * 1.15),
			Transactions: 500 + rng.Intn(1000),
		})
	}
	return series, nil
}
