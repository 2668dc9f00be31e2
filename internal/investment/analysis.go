package investment

import (
	"math"

	"homeverse/server/config"
	"homeverse/server/internal/models"
)

const (
	// ProjectionYears is the horizon of an investment analysis
	ProjectionYears = 10
	// RentalYield is the assumed gross annual rent as a percentage of price
	RentalYield = 3.0
)

// Analyze projects the value of a property over ProjectionYears and estimates
// its rental return. Unknown zones fall back to the default zone.
func Analyze(price int64, zoneID string) (*models.InvestmentAnalysis, error) {
	if price <= 0 || price > MaxAmount {
		return nil, models.NewInvalidInput("price", "must be positive and at most 1e15")
	}

	zone := config.GetZoneOrDefault(zoneID)
	p := float64(price)
	growth := zone.GrowthRate / 100

	projections := make([]models.YearProjection, 0, ProjectionYears)
	for year := 1; year <= ProjectionYears; year++ {
		future := p * math.Pow(1+growth, float64(year))
		appreciation := future - p
		projections = append(projections, models.YearProjection{
			Year:         year,
			Value:        truncate(future),
			Appreciation: truncate(appreciation),
			ROI:          Round2(appreciation / p * 100),
		})
	}

	annualRent := p * RentalYield / 100
	score := Score(zone)

	return &models.InvestmentAnalysis{
		PropertyPrice: price,
		Zone:          zone.Name,
		GrowthRate:    zone.GrowthRate,
		DemandIndex:   zone.DemandIndex,
		SupplyIndex:   zone.SupplyIndex,
		Projections:   projections,
		RentalAnalysis: models.RentalAnalysis{
			ExpectedAnnualRent:  truncate(annualRent),
			ExpectedMonthlyRent: truncate(annualRent / 12),
			RentalYield:         RentalYield,
			PaybackPeriod:       Round1(100 / RentalYield),
		},
		InvestmentScore: score,
		Recommendation:  Recommend(score),
	}, nil
}
