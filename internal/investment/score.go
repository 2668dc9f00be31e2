package investment

import (
	"math"

	"homeverse/server/config"
	"homeverse/server/internal/models"
)

const (
	maxGrowthScore = 60
	maxScore       = 100
)

// Score rates a zone between 0 and 100 from its growth, demand and supply
func Score(zone *config.Zone) float64 {
	growth := math.Min(zone.GrowthRate*4, maxGrowthScore)
	demand := float64(zone.DemandIndex) * 0.25
	supply := float64(100-zone.SupplyIndex) * 0.15

	total := math.Max(0, math.Min(growth+demand+supply, maxScore))
	return Round1(total)
}

// Recommend maps an investment score to a rating and suggested action
func Recommend(score float64) models.Recommendation {
	switch {
	case score >= 85:
		return models.Recommendation{
			Rating:  "Excellent",
			Message: "Highly recommended for investment. Strong growth potential and high demand.",
			Action:  "BUY",
		}
	case score >= 70:
		return models.Recommendation{
			Rating:  "Good",
			Message: "Good investment opportunity with steady growth expected.",
			Action:  "CONSIDER",
		}
	case score >= 55:
		return models.Recommendation{
			Rating:  "Average",
			Message: "Moderate investment potential. Consider other locations for better returns.",
			Action:  "HOLD",
		}
	default:
		return models.Recommendation{
			Rating:  "Below Average",
			Message: "Limited growth potential. Not recommended for short-term investment.",
			Action:  "WAIT",
		}
	}
}
