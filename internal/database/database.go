package database

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"homeverse/server/internal/models"
)

const DefaultHistoryLimit = 10

// Database stores the valuation history
type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Database{db: db, logger: logger}, nil
}

// closeDB releases a handle that will not be returned to the caller
func closeDB(db *gorm.DB, logger *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close database")
	}
}

// NewTestDB opens a private in-memory database with migrations applied
func NewTestDB() (*Database, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	d, err := NewDatabase(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), logger)
	if err != nil {
		return nil, err
	}

	// A shared in-memory database lives as long as one connection stays open
	sqlDB, err := d.db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := d.RunMigrations(); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDB exposes the underlying handle for transactional writers
func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpsertValuations writes a batch of records inside the caller's transaction
func UpsertValuations(tx *gorm.DB, records []*models.ValuationRecord) error {
	if len(records) == 0 {
		return nil
	}
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error
}

// GetRecentValuations returns the newest records first, optionally limited to one zone
func (d *Database) GetRecentValuations(limit int, zone string) ([]models.ValuationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := d.db.Model(&models.ValuationRecord{}).Order("created_at DESC").Limit(limit)
	if zone != "" {
		query = query.Where("zone = ?", zone)
	}

	var records []models.ValuationRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query valuations: %w", err)
	}
	return records, nil
}

// GetZoneValuationStats aggregates the recorded valuations of a zone
func (d *Database) GetZoneValuationStats(zone string) (*models.ZoneValuationStats, error) {
	stats := &models.ZoneValuationStats{Zone: zone}
	err := d.db.Model(&models.ValuationRecord{}).
		Select("COUNT(*) AS valuation_count, COALESCE(AVG(price), 0) AS average_price, COALESCE(AVG(price_per_sqft), 0) AS avg_price_per_sqft").
		Where("zone = ?", zone).
		Scan(stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate valuations for zone %s: %w", zone, err)
	}
	stats.Zone = zone
	return stats, nil
}
