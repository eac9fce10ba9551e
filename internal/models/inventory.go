package models

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents a single ingredient line in the stock register.
// Quantity is stored as the raw string entered by the kitchen ("2.5 kg",
// "500ml", "12 pcs"); normalization happens in the inventory package.
type InventoryItem struct {
	gorm.Model
	Name        string    `gorm:"column:name" json:"name"`
	QuantityRaw string    `gorm:"column:quantity" json:"quantity"`
	ExpiryDate  time.Time `gorm:"column:expiry_date" json:"expiry_date"`
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "ingredient_inventory"
}

// ValidateInventoryItem validates an inventory record at the store boundary
func ValidateInventoryItem(item *InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("inventory item name is required")
	}
	if item.QuantityRaw == "" {
		return fmt.Errorf("inventory item quantity is required")
	}
	if item.ExpiryDate.IsZero() {
		return fmt.Errorf("inventory item expiry date is required")
	}
	return nil
}

// Unit represents the unit of measurement for an inventory quantity.
// The set is closed: mass standardizes to grams, volume to milliliters,
// and piece counts pass through. The three kinds are never compared
// against each other.
type Unit string

const (
	// Weight units
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"

	// Volume units
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"

	// Count units
	UnitPiece Unit = "piece"
)
