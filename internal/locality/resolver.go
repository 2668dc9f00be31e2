package locality

import (
	"strings"

	"homeverse/server/config"
)

type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

type MatchKind string

const (
	MatchNone     MatchKind = ""
	MatchLocality MatchKind = "locality"
	MatchLandmark MatchKind = "landmark"
)

// Match is the outcome of resolving a free-text location
type Match struct {
	Zone       string     `json:"zone"`
	Confidence Confidence `json:"confidence"`
	Label      string     `json:"matched,omitempty"`
	Kind       MatchKind  `json:"kind,omitempty"`
}

// Matched reports whether a locality or landmark was found
func (m Match) Matched() bool {
	return m.Kind != MatchNone
}

// Resolver maps location text to a zone. Scan order follows the order of the
// zone and landmark slices it was built with.
type Resolver struct {
	zones       []config.Zone
	landmarks   []config.Landmark
	defaultZone string
}

func NewResolver(zones []config.Zone, landmarks []config.Landmark) *Resolver {
	return &Resolver{
		zones:       zones,
		landmarks:   landmarks,
		defaultZone: config.DefaultZone,
	}
}

// Resolve returns the first locality match across zones, then the first
// landmark match, then the default zone with low confidence.
func (r *Resolver) Resolve(location string) Match {
	text := strings.ToLower(location)

	for _, zone := range r.zones {
		for _, name := range zone.Localities {
			if strings.Contains(text, strings.ToLower(name)) {
				return Match{Zone: zone.ID, Confidence: ConfidenceHigh, Label: name, Kind: MatchLocality}
			}
		}
	}

	for _, landmark := range r.landmarks {
		if strings.Contains(text, strings.ToLower(landmark.Name)) {
			return Match{Zone: landmark.Zone, Confidence: ConfidenceHigh, Label: landmark.Name, Kind: MatchLandmark}
		}
	}

	return Match{Zone: r.defaultZone, Confidence: ConfidenceLow}
}
