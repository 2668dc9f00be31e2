package geometry

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeverse/server/config"
)

func TestNearestZone(t *testing.T) {
	m := NewZoneMap(config.SupportedZones, config.Landmarks, nil)

	tests := []struct {
		name     string
		lat, lng float64
		want     string
	}{
		{name: "central center", lat: 21.1458, lng: 79.0882, want: "central"},
		{name: "near west center", lat: 21.1400, lng: 79.0500, want: "west"},
		{name: "far north east", lat: 21.2300, lng: 79.2000, want: "outskirts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, dist, err := m.NearestZone(tt.lat, tt.lng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, zone.ID)
			assert.GreaterOrEqual(t, dist, 0.0)
		})
	}

	zone, dist, err := m.NearestZone(21.1458, 79.0882)
	require.NoError(t, err)
	assert.Equal(t, "central", zone.ID)
	assert.InDelta(t, 0, dist, 1e-6)
}

func TestNearestZone_InvalidCoordinates(t *testing.T) {
	m := NewZoneMap(config.SupportedZones, config.Landmarks, nil)

	_, _, err := m.NearestZone(91, 79)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, _, err = m.NearestZone(21, -181)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestFeatureCollection(t *testing.T) {
	m := NewZoneMap(config.SupportedZones, config.Landmarks, nil)
	fc := m.FeatureCollection()

	kinds := map[string]int{}
	coverage := map[string]bool{}
	for _, f := range fc.Features {
		kind := f.Properties.MustString("kind")
		kinds[kind]++
		if kind == "coverage" {
			coverage[f.Properties.MustString("zone")] = true
			_, ok := f.Geometry.(orb.Polygon)
			assert.True(t, ok)
		}
	}

	assert.Equal(t, len(config.SupportedZones), kinds["zone"])
	assert.Equal(t, len(config.Landmarks), kinds["landmark"])
	// Only zones with at least two landmarks enclose an area
	assert.True(t, coverage["central"])
	assert.True(t, coverage["west"])
	assert.True(t, coverage["south"])
	assert.False(t, coverage["north"])

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
}

func TestConvexHull(t *testing.T) {
	square := []orb.Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}, {0.5, 0.5}}
	hull := convexHull(square)
	require.NotNil(t, hull)

	// Closed ring of the four corners, interior point dropped
	assert.Len(t, hull, 5)
	assert.Equal(t, hull[0], hull[len(hull)-1])
	assert.NotContains(t, hull, orb.Point{0.5, 0.5})

	assert.Nil(t, convexHull([]orb.Point{{0, 0}, {1, 1}}))
	assert.Nil(t, convexHull([]orb.Point{{0, 0}, {1, 1}, {2, 2}}))
}
