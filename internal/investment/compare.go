package investment

import (
	"github.com/shopspring/decimal"

	"homeverse/server/internal/models"
)

const unknownLocation = "Unknown"

// CompareInsight summarizes a set of prices. labels[i] names the property
// priced at prices[i]; ties resolve to the first property.
func CompareInsight(prices []int64, labels []string) (models.ComparisonInsight, error) {
	if len(prices) == 0 {
		return models.ComparisonInsight{}, models.NewInvalidInput("properties", "at least one property is required")
	}

	sum := decimal.Zero
	minIdx, maxIdx := 0, 0
	for i, p := range prices {
		sum = sum.Add(decimal.NewFromInt(p))
		if p < prices[minIdx] {
			minIdx = i
		}
		if p > prices[maxIdx] {
			maxIdx = i
		}
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(prices)))).Truncate(0).IntPart()

	var variation float64
	if avg != 0 {
		variation = Round2(float64(prices[maxIdx]-prices[minIdx]) / float64(avg) * 100)
	}

	return models.ComparisonInsight{
		AvgPrice:       avg,
		MinPrice:       prices[minIdx],
		MaxPrice:       prices[maxIdx],
		PriceVariation: variation,
		BestValue:      label(labels, minIdx),
		Premium:        label(labels, maxIdx),
	}, nil
}

func label(labels []string, i int) string {
	if i >= len(labels) || labels[i] == "" {
		return unknownLocation
	}
	return labels[i]
}
