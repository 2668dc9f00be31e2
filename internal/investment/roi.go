package investment

import (
	"math"

	"homeverse/server/config"
	"homeverse/server/internal/models"
)

// ROI computes the return of holding a property for holdingPeriod years, with
// and without rental income.
func ROI(purchasePrice int64, holdingPeriod int, zoneID string) (*models.ROIBreakdown, error) {
	if purchasePrice <= 0 || purchasePrice > MaxAmount {
		return nil, models.NewInvalidInput("purchasePrice", "must be positive and at most 1e15")
	}
	if holdingPeriod <= 0 || holdingPeriod > MaxYears {
		return nil, models.NewInvalidInput("holdingPeriod", "must be between 1 and 50")
	}

	zone := config.GetZoneOrDefault(zoneID)
	p := float64(purchasePrice)
	growth := zone.GrowthRate / 100

	future := p * math.Pow(1+growth, float64(holdingPeriod))
	appreciation := future - p
	totalROI := appreciation / p * 100

	annualRent := p * RentalYield / 100
	totalRent := annualRent * float64(holdingPeriod)

	breakdown := make([]models.YearBreakdown, 0, holdingPeriod)
	for year := 1; year <= holdingPeriod; year++ {
		value := p * math.Pow(1+growth, float64(year))
		rent := annualRent * float64(year)
		breakdown = append(breakdown, models.YearBreakdown{
			Year:        year,
			Value:       truncate(value),
			Rent:        truncate(rent),
			TotalReturn: truncate(value - p + rent),
		})
	}

	return &models.ROIBreakdown{
		PurchasePrice:     purchasePrice,
		HoldingPeriod:     holdingPeriod,
		FutureValue:       truncate(future),
		TotalAppreciation: truncate(appreciation),
		TotalROI:          Round2(totalROI),
		AnnualROI:         Round2(totalROI / float64(holdingPeriod)),
		RentalIncome: models.RentalIncome{
			AnnualRent:  truncate(annualRent),
			TotalRent:   truncate(totalRent),
			ROIWithRent: Round2((appreciation + totalRent) / p * 100),
		},
		BreakdownByYear: breakdown,
	}, nil
}
