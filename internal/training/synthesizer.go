package training

import (
	"math/rand"

	"homeverse/server/config"
	"homeverse/server/internal/models"
)

const (
	DefaultSampleCount = 1000
	DefaultSeed        = 42

	minArea = 400
	maxArea = 3000 // exclusive
)

var (
	bedroomValues  = []float64{1, 2, 3, 4, 5}
	bedroomWeights = []float64{0.10, 0.30, 0.35, 0.20, 0.05}

	propertyTypeValues  = []float64{0.9, 1.0, 1.15, 1.25, 1.5}
	propertyTypeWeights = []float64{0.10, 0.50, 0.20, 0.10, 0.10}

	ageValues  = []float64{1.1, 1.05, 1.0, 0.95, 0.85}
	ageWeights = []float64{0.15, 0.25, 0.35, 0.15, 0.10}
)

// Synthesizer generates labeled training data from the zone catalog
type Synthesizer struct {
	zones []config.Zone
}

func NewSynthesizer(zones []config.Zone) *Synthesizer {
	return &Synthesizer{zones: zones}
}

// Generate produces n samples. The output depends only on the state of rng, so
// two generators seeded alike yield identical datasets.
func (s *Synthesizer) Generate(n int, rng *rand.Rand) []models.TrainingSample {
	if n <= 0 || len(s.zones) == 0 {
		return nil
	}

	samples := make([]models.TrainingSample, 0, n)
	for i := 0; i < n; i++ {
		zoneIdx := rng.Intn(len(s.zones))
		baseRate := float64(s.zones[zoneIdx].BaseRate)

		bedrooms := weightedChoice(rng, bedroomValues, bedroomWeights)
		area := float64(minArea + rng.Intn(maxArea-minArea))
		propertyType := weightedChoice(rng, propertyTypeValues, propertyTypeWeights)
		age := weightedChoice(rng, ageValues, ageWeights)
		floor := rng.Intn(15)
		amenities := rng.Intn(8)

		price := baseRate * area * bedrooms * 0.3 * propertyType * age *
			FloorMultiplier(floor) * AmenityMultiplier(amenities)
		price += rng.NormFloat64() * price * 0.05

		samples = append(samples, models.TrainingSample{
			Features: models.FeatureVector{
				float64(zoneIdx),
				bedrooms,
				area,
				propertyType,
				age,
				float64(floor),
				float64(amenities),
			},
			Price: price,
		})
	}
	return samples
}

// FloorMultiplier rewards higher floors
func FloorMultiplier(floor int) float64 {
	switch {
	case floor <= 3:
		return 1.0
	case floor <= 7:
		return 1.05
	default:
		return 1.1
	}
}

func AmenityMultiplier(count int) float64 {
	return 1.0 + float64(count)*0.01
}

func weightedChoice(rng *rand.Rand, values, weights []float64) float64 {
	r := rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return values[i]
		}
	}
	return values[len(values)-1]
}
