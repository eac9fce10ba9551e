package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// MenuItem represents a dish on the menu with the ingredients it requires.
// Menu rows are static reference data; the campaign workflow only reads them.
type MenuItem struct {
	gorm.Model
	Name        string      `gorm:"column:name" json:"name"`
	Description string      `gorm:"column:description" json:"description,omitempty"`
	Ingredients StringSlice `gorm:"type:text" json:"ingredients"`
}

// TableName sets the table name for MenuItem
func (MenuItem) TableName() string {
	return "menu"
}

// ValidateMenuItem validates a menu item at the store boundary.
// A dish with zero ingredients is legal: it is trivially preparable.
func ValidateMenuItem(item *MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	for _, ing := range item.Ingredients {
		if ing == "" {
			return fmt.Errorf("menu item %q has an empty ingredient entry", item.Name)
		}
	}
	return nil
}

// HasIngredient checks if the dish requires a specific ingredient
func (mi *MenuItem) HasIngredient(ingredient string) bool {
	for _, ing := range mi.Ingredients {
		if ing == ingredient {
			return true
		}
	}
	return false
}
