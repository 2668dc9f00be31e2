package geometry

import (
	"errors"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"homeverse/server/config"
)

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// ZoneMap exposes the zone catalog geographically
type ZoneMap struct {
	zones     []config.Zone
	landmarks []config.Landmark
	logger    *logrus.Logger
}

func NewZoneMap(zones []config.Zone, landmarks []config.Landmark, logger *logrus.Logger) *ZoneMap {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &ZoneMap{zones: zones, landmarks: landmarks, logger: logger}
}

// toPoint converts a [lat, lng] pair to an orb point
func toPoint(latLng []float64) (orb.Point, bool) {
	if len(latLng) != 2 {
		return orb.Point{}, false
	}
	return orb.Point{latLng[1], latLng[0]}, true
}

// FeatureCollection returns zone centers, zone coverage hulls and landmarks as GeoJSON.
// A coverage hull spans a zone's center and its landmarks and is only emitted
// when those points enclose an area.
func (m *ZoneMap) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, zone := range m.zones {
		center, ok := toPoint(zone.Center)
		if !ok {
			m.logger.WithField("zone", zone.ID).Warn("Zone has no center coordinates")
			continue
		}

		feature := geojson.NewFeature(center)
		feature.Properties = geojson.Properties{
			"kind":        "zone",
			"zone":        zone.ID,
			"name":        zone.Name,
			"basePrice":   zone.BaseRate,
			"growthRate":  zone.GrowthRate,
			"demandIndex": zone.DemandIndex,
			"supplyIndex": zone.SupplyIndex,
		}
		fc.Append(feature)

		points := []orb.Point{center}
		for _, landmark := range m.landmarks {
			if landmark.Zone != zone.ID {
				continue
			}
			if p, ok := toPoint(landmark.Location); ok {
				points = append(points, p)
			}
		}

		if hull := convexHull(points); hull != nil {
			area := geo.Area(orb.Polygon{hull})
			coverage := geojson.NewFeature(orb.Polygon{hull})
			coverage.Properties = geojson.Properties{
				"kind":          "coverage",
				"zone":          zone.ID,
				"point_count":   len(points),
				"area_sq_km":    math.Round(math.Abs(area)/1e4) / 100,
				"geometry_type": "hull",
			}
			fc.Append(coverage)
		}
	}

	for _, landmark := range m.landmarks {
		p, ok := toPoint(landmark.Location)
		if !ok {
			continue
		}
		feature := geojson.NewFeature(p)
		feature.Properties = geojson.Properties{
			"kind":       "landmark",
			"name":       landmark.Name,
			"zone":       landmark.Zone,
			"multiplier": landmark.Multiplier,
		}
		fc.Append(feature)
	}

	return fc
}

// NearestZone returns the zone whose center is closest to the given point and
// the distance to it in meters.
func (m *ZoneMap) NearestZone(lat, lng float64) (*config.Zone, float64, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, 0, ErrInvalidCoordinates
	}
	target := orb.Point{lng, lat}

	var nearest *config.Zone
	best := math.Inf(1)
	for i := range m.zones {
		center, ok := toPoint(m.zones[i].Center)
		if !ok {
			continue
		}
		if d := geo.Distance(target, center); d < best {
			best = d
			nearest = &m.zones[i]
		}
	}
	if nearest == nil {
		return nil, 0, errors.New("no zone has coordinates")
	}
	return nearest, best, nil
}
