package config

// Option is a selectable property attribute with a price multiplier
type Option struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Amenity is an optional feature of a property. Price is a flat cost added on
// top of the model estimate; PriceImpact is informational.
type Amenity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PriceImpact float64 `json:"priceImpact,omitempty"`
}

var PropertyTypes = []Option{
	{ID: "apartment", Name: "Apartment", Multiplier: 1.0},
	{ID: "independent", Name: "Independent House", Multiplier: 1.15},
	{ID: "villa", Name: "Villa", Multiplier: 1.30},
	{ID: "penthouse", Name: "Penthouse", Multiplier: 1.50},
	{ID: "duplex", Name: "Duplex", Multiplier: 1.25},
}

var BuildingAges = []Option{
	{ID: "new", Name: "Under Construction", Multiplier: 1.10},
	{ID: "0-5", Name: "0-5 Years", Multiplier: 1.05},
	{ID: "5-10", Name: "5-10 Years", Multiplier: 1.0},
	{ID: "10-15", Name: "10-15 Years", Multiplier: 0.95},
	{ID: "15+", Name: "15+ Years", Multiplier: 0.85},
}

var Amenities = []Amenity{
	{ID: "parking", Name: "Covered Parking", Price: 150000},
	{ID: "gym", Name: "Gymnasium", PriceImpact: 1.03},
	{ID: "pool", Name: "Swimming Pool", PriceImpact: 1.05},
	{ID: "garden", Name: "Garden", PriceImpact: 1.02},
	{ID: "security", Name: "24/7 Security", PriceImpact: 1.02},
	{ID: "lift", Name: "Lift", PriceImpact: 1.04},
	{ID: "powerbackup", Name: "Power Backup", PriceImpact: 1.02},
	{ID: "clubhouse", Name: "Club House", PriceImpact: 1.04},
}

// FindOption returns the option with the given id, or nil
func FindOption(options []Option, id string) *Option {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}
