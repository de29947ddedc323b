package database

import (
	"gorm.io/gorm"

	"bienesraices/internal/logger"
	"bienesraices/internal/models"
)

// Reference data. Categories and price tiers are static: they are
// inserted once and never mutated through the application.

var categories = []models.Category{
	{ID: 1, Name: "Casa"},
	{ID: 2, Name: "Departamento"},
	{ID: 3, Name: "Bodega"},
	{ID: 4, Name: "Terreno"},
	{ID: 5, Name: "Cabaña"},
}

var prices = []models.Price{
	{ID: 1, Name: "0 - 50,000 USD"},
	{ID: 2, Name: "50,000 - 100,000 USD"},
	{ID: 3, Name: "100,000 - 200,000 USD"},
	{ID: 4, Name: "200,000 - 500,000 USD"},
	{ID: 5, Name: "+500,000 USD"},
}

// Seed inserts the reference data when the tables are empty. Safe to
// run on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		logger.Info("seeded categories", "count", len(categories))
	}

	if err := db.Model(&models.Price{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&prices).Error; err != nil {
			return err
		}
		logger.Info("seeded price tiers", "count", len(prices))
	}

	return nil
}
