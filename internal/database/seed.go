package database

import (
	"time"

	"github.com/jinzhu/gorm"

	"promoboard/internal/models"
)

// Seed ensures default reference data exists so a fresh install is usable
// immediately. Menu and inventory are only seeded when their tables are
// empty; existing data is never touched.
func Seed(db *gorm.DB) error {
	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		for _, item := range defaultMenu() {
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	var inventoryCount int64
	db.Model(&models.InventoryItem{}).Count(&inventoryCount)
	if inventoryCount == 0 {
		for _, item := range defaultInventory() {
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func defaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Margherita Pizza", Description: "Classic tomato and mozzarella", Ingredients: models.StringSlice{"flour", "tomatoes", "mozzarella", "basil"}},
		{Name: "Chicken Caesar Salad", Description: "Grilled chicken over romaine", Ingredients: models.StringSlice{"chicken", "lettuce", "parmesan", "croutons"}},
		{Name: "Beef Burger", Description: "House-ground patty with fixings", Ingredients: models.StringSlice{"beef", "burger buns", "lettuce", "tomatoes"}},
		{Name: "Tomato Soup", Description: "Slow-simmered with cream", Ingredients: models.StringSlice{"tomatoes", "cream", "basil"}},
		{Name: "Garlic Bread", Description: "Toasted baguette with garlic butter", Ingredients: models.StringSlice{"flour", "butter", "garlic"}},
	}
}

func defaultInventory() []models.InventoryItem {
	nextMonth := time.Now().AddDate(0, 1, 0)
	nextWeek := time.Now().AddDate(0, 0, 7)
	return []models.InventoryItem{
		{Name: "Flour", QuantityRaw: "25 kg", ExpiryDate: nextMonth},
		{Name: "Tomatoes", QuantityRaw: "8 kg", ExpiryDate: nextWeek},
		{Name: "Mozzarella", QuantityRaw: "3 kg", ExpiryDate: nextWeek},
		{Name: "Basil", QuantityRaw: "500 g", ExpiryDate: nextWeek},
		{Name: "Chicken", QuantityRaw: "10 kg", ExpiryDate: nextWeek},
		{Name: "Lettuce", QuantityRaw: "4 kg", ExpiryDate: nextWeek},
		{Name: "Parmesan", QuantityRaw: "2 kg", ExpiryDate: nextMonth},
		{Name: "Croutons", QuantityRaw: "1.5 kg", ExpiryDate: nextMonth},
		{Name: "Beef", QuantityRaw: "12 kg", ExpiryDate: nextWeek},
		{Name: "Burger Buns", QuantityRaw: "40 pcs", ExpiryDate: nextWeek},
		{Name: "Cream", QuantityRaw: "2 l", ExpiryDate: nextWeek},
		{Name: "Butter", QuantityRaw: "5 kg", ExpiryDate: nextMonth},
		{Name: "Garlic", QuantityRaw: "1 kg", ExpiryDate: nextMonth},
	}
}
