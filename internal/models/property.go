package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Feature positions inside a FeatureVector
const (
	FeatureZone = iota
	FeatureBedrooms
	FeatureArea
	FeaturePropertyType
	FeatureAge
	FeatureFloor
	FeatureAmenities

	FeatureCount
)

// FeatureNames labels the features in vector order
var FeatureNames = [FeatureCount]string{
	"zone", "bedrooms", "area", "property_type", "age", "floor", "amenities",
}

// FeatureVector is the fixed-order numeric encoding of a property
type FeatureVector [FeatureCount]float64

// TrainingSample is a labeled feature vector
type TrainingSample struct {
	Features FeatureVector
	Price    float64
}

// PropertyDescription is the user supplied description of a property to value
type PropertyDescription struct {
	Location     string           `json:"location"`
	Bedrooms     BedroomCount     `json:"bedrooms"`
	Sqft         *float64         `json:"sqft"`
	PropertyType *Multiplier      `json:"propertyType"`
	BuildingAge  *Multiplier      `json:"buildingAge"`
	Floor        FloorValue       `json:"floor"`
	Amenities    []AmenityRequest `json:"amenities"`
}

// Multiplier is a catalog option as sent by the client
type Multiplier struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

// AmenityRequest is an amenity selected by the client. Only amenities that carry
// a price contribute a flat cost.
type AmenityRequest struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	PriceImpact *float64 `json:"priceImpact,omitempty"`
}

// BedroomCount accepts both "3", "5+" and 3
type BedroomCount string

func (b *BedroomCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = BedroomCount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Anything else is treated as absent and falls back to the default
		*b = ""
		return nil
	}
	*b = BedroomCount(n.String())
	return nil
}

// Count parses the bedroom count, stripping a trailing "+" marker
func (b BedroomCount) Count() (int, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(string(b), "+", ""))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// FloorValue keeps track of whether a floor was supplied and whether it was an integer
type FloorValue struct {
	Number  int
	Present bool
	Valid   bool
}

func (f *FloorValue) UnmarshalJSON(data []byte) error {
	f.Present = true
	if len(data) > 0 && data[0] == '"' {
		f.Valid = false
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		f.Valid = false
		return nil
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		f.Valid = false
		return nil
	}
	f.Number = v
	f.Valid = true
	return nil
}

func (f FloorValue) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Number)
}

// ValuationResult is the structured output of the pricing calculator
type ValuationResult struct {
	Price        int64         `json:"price"`
	PricePerSqft int64         `json:"pricePerSqft"`
	Breakdown    Breakdown     `json:"breakdown"`
	ZoneInfo     ZoneInfo      `json:"zoneInfo"`
	MLInsights   ModelInsights `json:"mlInsights"`
}

type Breakdown struct {
	BaseRate          int                `json:"baseRate"`
	MLPrediction      int64              `json:"mlPrediction"`
	AdditionalCosts   int64              `json:"additionalCosts"`
	FeatureImportance map[string]float64 `json:"featureImportance"`
}

type ZoneInfo struct {
	DetectedZone    string  `json:"detectedZone"`
	ZoneName        string  `json:"zoneName"`
	Confidence      string  `json:"confidence"`
	MatchedLocality *string `json:"matchedLocality"`
	GrowthRate      float64 `json:"growthRate"`
	DemandIndex     int     `json:"demandIndex"`
}

type ModelInsights struct {
	ModelUsed   string `json:"modelUsed"`
	Accuracy    string `json:"accuracy"`
	DataPoints  int    `json:"dataPoints"`
	LastUpdated string `json:"lastUpdated"`
}
