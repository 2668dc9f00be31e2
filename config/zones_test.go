package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetZoneNames(t *testing.T) {
	assert.Equal(t, []string{"central", "east", "west", "south", "north", "outskirts"}, GetZoneNames())
}

func TestGetZoneByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
		found    bool
	}{
		{name: "exact id", id: "west", expected: "West Nagpur", found: true},
		{name: "mixed case and spaces", id: "  Central ", expected: "Central Nagpur", found: true},
		{name: "unknown zone", id: "downtown", found: false},
		{name: "empty id", id: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := GetZoneByID(tt.id)
			if !tt.found {
				assert.Nil(t, zone)
				return
			}
			require.NotNil(t, zone)
			assert.Equal(t, tt.expected, zone.Name)
		})
	}
}

func TestGetZoneOrDefault(t *testing.T) {
	assert.Equal(t, "south", GetZoneOrDefault("south").ID)
	assert.Equal(t, DefaultZone, GetZoneOrDefault("nowhere").ID)
}

func TestZoneIndex(t *testing.T) {
	for i, zone := range SupportedZones {
		assert.Equal(t, i, ZoneIndex(zone.ID))
	}
	assert.Equal(t, -1, ZoneIndex("nowhere"))
}

func TestZoneCatalogInvariants(t *testing.T) {
	central := GetZoneByID("central")
	require.NotNil(t, central)
	assert.Equal(t, 4500, central.BaseRate)
	assert.Equal(t, 12.5, central.GrowthRate)
	assert.Equal(t, 85, central.DemandIndex)
	assert.Equal(t, 60, central.SupplyIndex)

	for _, zone := range SupportedZones {
		assert.NotEmpty(t, zone.Localities, zone.ID)
		assert.Len(t, zone.Center, 2, zone.ID)
		assert.Greater(t, zone.BaseRate, 0, zone.ID)
		assert.GreaterOrEqual(t, zone.DemandIndex, 0)
		assert.LessOrEqual(t, zone.DemandIndex, 100)
		assert.GreaterOrEqual(t, zone.SupplyIndex, 0)
		assert.LessOrEqual(t, zone.SupplyIndex, 100)
	}

	for _, landmark := range Landmarks {
		assert.NotNil(t, GetZoneByID(landmark.Zone), landmark.Name)
		assert.Greater(t, landmark.Multiplier, 1.0, landmark.Name)
	}
}

func TestGetLandmarkNames(t *testing.T) {
	names := GetLandmarkNames()
	require.Len(t, names, len(Landmarks))
	assert.Equal(t, "VCA Stadium", names[0])
	assert.Contains(t, names, "Futala Lake")
}

func TestFindOption(t *testing.T) {
	villa := FindOption(PropertyTypes, "villa")
	require.NotNil(t, villa)
	assert.Equal(t, 1.30, villa.Multiplier)

	old := FindOption(BuildingAges, "15+")
	require.NotNil(t, old)
	assert.Equal(t, 0.85, old.Multiplier)

	assert.Nil(t, FindOption(PropertyTypes, "castle"))
}
