package investment

import (
	"math"

	"github.com/shopspring/decimal"

	"homeverse/server/internal/models"
)

const maxAnnualRate = 100

// EMI computes the equated monthly instalment of a loan
func EMI(principal, annualRate float64, tenureYears int) (*models.EMIResult, error) {
	if math.IsNaN(principal) || principal <= 0 || principal > MaxAmount {
		return nil, models.NewInvalidInput("principal", "must be positive and at most 1e15")
	}
	if math.IsNaN(annualRate) || annualRate < 0 || annualRate > maxAnnualRate {
		return nil, models.NewInvalidInput("annualRate", "must be between 0 and 100")
	}
	if tenureYears <= 0 || tenureYears > MaxYears {
		return nil, models.NewInvalidInput("tenureYears", "must be between 1 and 50")
	}

	months := float64(tenureYears * 12)
	monthlyRate := annualRate / 12 / 100

	var emi float64
	if monthlyRate == 0 {
		emi = principal / months
	} else {
		growth := math.Pow(1+monthlyRate, months)
		emi = principal * monthlyRate * growth / (growth - 1)
	}
	total := emi * months

	return &models.EMIResult{
		MonthlyEMI:    roundInt(emi),
		TotalAmount:   roundInt(total),
		TotalInterest: roundInt(total - principal),
		Principal:     principal,
	}, nil
}

func roundInt(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
