package config

import "strings"

// Zone represents a market segment of the city with its pricing characteristics
type Zone struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BaseRate    int       `json:"basePrice"`
	Localities  []string  `json:"localities"`
	GrowthRate  float64   `json:"growthRate"`
	DemandIndex int       `json:"demandIndex"`
	SupplyIndex int       `json:"supplyIndex"`
	Center      []float64 `json:"center"`
}

// Landmark maps a point of interest to the zone it belongs to
type Landmark struct {
	Name       string    `json:"name"`
	Zone       string    `json:"zone"`
	Multiplier float64   `json:"multiplier"`
	Location   []float64 `json:"location"`
}

// DefaultZone is used when a location cannot be resolved
const DefaultZone = "central"

// SupportedZones is the ordered zone enumeration. The position of a zone in this
// slice is its feature index for the valuation model, so the order must not change.
var SupportedZones = []Zone{
	{
		ID:       "central",
		Name:     "Central Nagpur",
		BaseRate: 4500,
		Localities: []string{
			"Sitabuldi", "Dharampeth", "Mahal", "Gandhibagh", "Bajaj Nagar",
			"Ramdaspeth", "Civil Lines", "Mominpura", "Itwari", "Jaripatka",
		},
		GrowthRate:  12.5,
		DemandIndex: 85,
		SupplyIndex: 60,
		Center:      []float64{21.1458, 79.0882},
	},
	{
		ID:       "east",
		Name:     "East Nagpur",
		BaseRate: 4200,
		Localities: []string{
			"Laxmi Nagar", "Shankar Nagar", "Mankapur", "Pratap Nagar",
			"Besa", "Cotton Market", "Nandanvan", "Ajni",
		},
		GrowthRate:  10.2,
		DemandIndex: 78,
		SupplyIndex: 65,
		Center:      []float64{21.1466, 79.1310},
	},
	{
		ID:       "west",
		Name:     "West Nagpur",
		BaseRate: 4800,
		Localities: []string{
			"Dharampeth", "Dhantoli", "Hanuman Nagar", "Seminary Hills",
			"CA Road", "Gokulpeth", "Ramnagar", "South Ambazari Road",
		},
		GrowthRate:  14.8,
		DemandIndex: 92,
		SupplyIndex: 55,
		Center:      []float64{21.1395, 79.0520},
	},
	{
		ID:       "south",
		Name:     "South Nagpur",
		BaseRate: 3800,
		Localities: []string{
			"Wadi", "Hingna", "Telephone Exchange Square", "Pachpaoli",
			"Vayusena Nagar", "Sonegaon", "MIHAN", "Airport Area",
		},
		GrowthRate:  15.5,
		DemandIndex: 88,
		SupplyIndex: 70,
		Center:      []float64{21.0850, 79.0580},
	},
	{
		ID:       "north",
		Name:     "North Nagpur",
		BaseRate: 3200,
		Localities: []string{
			"Khamla", "Kalamna", "Nara", "Bhandewadi", "Khare Town",
			"Ashi Nagar", "Indora", "Koradi Road",
		},
		GrowthRate:  9.5,
		DemandIndex: 70,
		SupplyIndex: 75,
		Center:      []float64{21.1985, 79.0905},
	},
	{
		ID:       "outskirts",
		Name:     "Outer Nagpur",
		BaseRate: 2500,
		Localities: []string{
			"Kamptee", "Kanhan", "Waddhamna", "Fetri", "Parseoni",
			"Umred Road", "Katol Road", "Kalmeshwar",
		},
		GrowthRate:  11.2,
		DemandIndex: 65,
		SupplyIndex: 80,
		Center:      []float64{21.2230, 79.1960},
	},
}

// Landmarks are scanned in this order when no locality matches
var Landmarks = []Landmark{
	{Name: "VCA Stadium", Zone: "central", Multiplier: 1.15, Location: []float64{21.1515, 79.0735}},
	{Name: "Empress City Mall", Zone: "west", Multiplier: 1.12, Location: []float64{21.1376, 79.0997}},
	{Name: "Futala Lake", Zone: "west", Multiplier: 1.20, Location: []float64{21.1525, 79.0425}},
	{Name: "Ambazari Lake", Zone: "west", Multiplier: 1.18, Location: []float64{21.1290, 79.0390}},
	{Name: "Seminary Hills", Zone: "west", Multiplier: 1.25, Location: []float64{21.1710, 79.0590}},
	{Name: "Airport", Zone: "south", Multiplier: 1.10, Location: []float64{21.0922, 79.0472}},
	{Name: "MIHAN", Zone: "south", Multiplier: 1.15, Location: []float64{21.0400, 79.0300}},
	{Name: "AIIMS", Zone: "central", Multiplier: 1.20, Location: []float64{21.0300, 79.0200}},
	{Name: "IIM Nagpur", Zone: "central", Multiplier: 1.18, Location: []float64{21.0390, 79.0170}},
	{Name: "VNIT", Zone: "south", Multiplier: 1.15, Location: []float64{21.1240, 79.0510}},
	{Name: "GMC", Zone: "central", Multiplier: 1.12, Location: []float64{21.1390, 79.0940}},
	{Name: "Railway Station", Zone: "central", Multiplier: 1.10, Location: []float64{21.1520, 79.0880}},
	{Name: "Sadar", Zone: "central", Multiplier: 1.08, Location: []float64{21.1640, 79.0800}},
	{Name: "Kasturchand Park", Zone: "central", Multiplier: 1.10, Location: []float64{21.1590, 79.0850}},
}

// GetZoneNames returns the zone identifiers in enumeration order
func GetZoneNames() []string {
	names := make([]string, len(SupportedZones))
	for i, zone := range SupportedZones {
		names[i] = zone.ID
	}
	return names
}

// GetZoneByID returns a zone configuration by identifier
func GetZoneByID(id string) *Zone {
	id = strings.ToLower(strings.TrimSpace(id))
	for i := range SupportedZones {
		if SupportedZones[i].ID == id {
			return &SupportedZones[i]
		}
	}
	return nil
}

// GetZoneOrDefault falls back to the default zone for unknown identifiers
func GetZoneOrDefault(id string) *Zone {
	if zone := GetZoneByID(id); zone != nil {
		return zone
	}
	return GetZoneByID(DefaultZone)
}

// ZoneIndex returns the position of the zone in SupportedZones, or -1
func ZoneIndex(id string) int {
	for i, zone := range SupportedZones {
		if zone.ID == id {
			return i
		}
	}
	return -1
}

// GetLandmarkNames returns the landmark names in scan order
func GetLandmarkNames() []string {
	names := make([]string, len(Landmarks))
	for i, landmark := range Landmarks {
		names[i] = landmark.Name
	}
	return names
}
