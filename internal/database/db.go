package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"promoboard/internal/models"
)

// Open connects to the configured database. SQLite is the default for
// single-restaurant deployments; Postgres is available for shared ones.
// The handle is returned to the caller and passed into each component
// explicitly, never held in a package global.
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all persisted record types.
// The unique index on staff_campaigns.doc_id is what makes campaign
// creation an atomic create-if-absent.
func Migrate(db *gorm.DB) error {
	db.AutoMigrate(
		&models.Campaign{},
		&models.MenuItem{},
		&models.InventoryItem{},
	)
	return db.Error
}
