package store

import (
	"fmt"
	"log"

	"github.com/jinzhu/gorm"

	"promoboard/internal/models"
)

// Catalog reads the menu and inventory reference data. Malformed rows are
// quarantined at this boundary: they are logged and dropped rather than
// handed to the feasibility filter.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a catalog reader on the given database handle
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Menu returns all menu items in insertion order
func (c *Catalog) Menu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	valid := items[:0]
	for _, item := range items {
		if err := models.ValidateMenuItem(&item); err != nil {
			log.Printf("Skipping malformed menu row %d: %v", item.ID, err)
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

// Inventory returns all inventory items in insertion order
func (c *Catalog) Inventory() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := c.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	valid := items[:0]
	for _, item := range items {
		if err := models.ValidateInventoryItem(&item); err != nil {
			log.Printf("Skipping malformed inventory row %d: %v", item.ID, err)
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}
