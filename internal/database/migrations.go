package database

import (
	"fmt"

	"homeverse/server/internal/models"
)

func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&models.ValuationRecord{}); err != nil {
		return fmt.Errorf("failed to migrate valuation records: %w", err)
	}

	// Serves the per-zone history queries
	if err := d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_valuation_records_zone_created
		ON valuation_records(zone, created_at);
	`).Error; err != nil {
		return fmt.Errorf("failed to create history index: %w", err)
	}

	d.logger.Info("Database migrations applied")
	return nil
}
