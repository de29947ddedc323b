package database

import (
	"gorm.io/gorm"

	"bienesraices/internal/models"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Price{},
		&models.Property{},
		&models.Message{},
	)
}
