package models

import "time"

// ValuationRecord is a persisted valuation, kept as history
type ValuationRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Location     string    `json:"location"`
	Zone         string    `json:"zone" gorm:"index"`
	Confidence   string    `json:"confidence"`
	Bedrooms     int       `json:"bedrooms"`
	Sqft         float64   `json:"sqft"`
	Price        int64     `json:"price"`
	PricePerSqft int64     `json:"pricePerSqft"`
	MLPrediction int64     `json:"mlPrediction"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
}

// ZoneValuationStats summarizes the recorded valuations of a zone
type ZoneValuationStats struct {
	Zone            string  `json:"zone"`
	ValuationCount  int64   `json:"valuationCount"`
	AveragePrice    float64 `json:"averagePrice"`
	AvgPricePerSqft float64 `json:"avgPricePerSqft"`
}
