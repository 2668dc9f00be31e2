package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeverse/server/internal/models"
)

func seedValuations(t *testing.T, d *Database) {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []*models.ValuationRecord{
		{Location: "Dharampeth", Zone: "central", Price: 4000000, PricePerSqft: 4000, CreatedAt: base},
		{Location: "Besa", Zone: "east", Price: 3000000, PricePerSqft: 3000, CreatedAt: base.Add(time.Hour)},
		{Location: "Sitabuldi", Zone: "central", Price: 6000000, PricePerSqft: 5000, CreatedAt: base.Add(2 * time.Hour)},
	}
	require.NoError(t, UpsertValuations(d.GetDB(), records))
}

func TestGetRecentValuations(t *testing.T) {
	d, err := NewTestDB()
	require.NoError(t, err)
	defer d.Close()
	seedValuations(t, d)

	tests := []struct {
		name      string
		limit     int
		zone      string
		locations []string
	}{
		{name: "all zones newest first", limit: 10, locations: []string{"Sitabuldi", "Besa", "Dharampeth"}},
		{name: "limited", limit: 1, locations: []string{"Sitabuldi"}},
		{name: "zone filter", limit: 10, zone: "central", locations: []string{"Sitabuldi", "Dharampeth"}},
		{name: "default limit", limit: 0, locations: []string{"Sitabuldi", "Besa", "Dharampeth"}},
		{name: "unknown zone", limit: 10, zone: "north", locations: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := d.GetRecentValuations(tt.limit, tt.zone)
			require.NoError(t, err)

			var locations []string
			for _, r := range records {
				locations = append(locations, r.Location)
			}
			assert.Equal(t, tt.locations, locations)
		})
	}
}

func TestGetZoneValuationStats(t *testing.T) {
	d, err := NewTestDB()
	require.NoError(t, err)
	defer d.Close()
	seedValuations(t, d)

	stats, err := d.GetZoneValuationStats("central")
	require.NoError(t, err)
	assert.Equal(t, "central", stats.Zone)
	assert.Equal(t, int64(2), stats.ValuationCount)
	assert.InDelta(t, 5000000, stats.AveragePrice, 0.001)
	assert.InDelta(t, 4500, stats.AvgPricePerSqft, 0.001)

	empty, err := d.GetZoneValuationStats("outskirts")
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.ValuationCount)
	assert.Zero(t, empty.AveragePrice)
}

func TestUpsertValuations_AssignsIDs(t *testing.T) {
	d, err := NewTestDB()
	require.NoError(t, err)
	defer d.Close()

	records := []*models.ValuationRecord{{Location: "Besa", Zone: "east"}}
	require.NoError(t, UpsertValuations(d.GetDB(), records))
	assert.Len(t, records[0].ID, 36)

	assert.NoError(t, UpsertValuations(d.GetDB(), nil))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	d, err := NewTestDB()
	require.NoError(t, err)
	defer d.Close()

	assert.NoError(t, d.RunMigrations())
}

func TestNewDatabase_UnreachablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "valuations.db")

	d, err := NewDatabase(path, nil)
	assert.Error(t, err)
	assert.Nil(t, d)
}

func TestCloseDB_ReleasesConnections(t *testing.T) {
	d, err := NewDatabase(filepath.Join(t.TempDir(), "valuations.db"), nil)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	closeDB(d.GetDB(), logger)

	sqlDB, err := d.GetDB().DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
