package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bienesraices/internal/models"
)

var ErrPropertyNotFound = errors.New("property not found")

// OwnerPageSize is the page size for the seller dashboard.
const OwnerPageSize = 10

// FeaturedLimit is how many recent listings the home page shows per category.
const FeaturedLimit = 3

type PropertyRepository interface {
	FindByID(id string) (*models.Property, error)
	// FindByIDWithRelations preloads the price and category tiers.
	FindByIDWithRelations(id string) (*models.Property, error)
	FindByOwner(ownerID string, limit, offset int) ([]models.Property, error)
	CountByOwner(ownerID string) (int64, error)
	FindByCategory(categoryID uint) ([]models.Property, error)
	FindLatestByCategory(categoryID uint, limit int) ([]models.Property, error)
	SearchByTitle(term string) ([]models.Property, error)
	Create(property *models.Property) error
	Update(property *models.Property) error
	// Delete removes the row and its messages in one transaction.
	Delete(property *models.Property) error
	// Transaction runs fn atomically against the same handle.
	Transaction(fn func(tx PropertyRepository) error) error
}

type PropertyRepositoryImpl struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

func (r *PropertyRepositoryImpl) FindByID(id string) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindByIDWithRelations(id string) (*models.Property, error) {
	var property models.Property
	err := r.db.Preload("Price").Preload("Category").
		First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindByOwner(ownerID string, limit, offset int) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.
		Preload("Category").Preload("Price").Preload("Messages").
		Where("user_id = ?", ownerID).
		Limit(limit).Offset(offset).
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) CountByOwner(ownerID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Property{}).
		Where("user_id = ?", ownerID).
		Count(&total).Error
	return total, err
}

func (r *PropertyRepositoryImpl) FindByCategory(categoryID uint) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Preload("Price").
		Where("category_id = ?", categoryID).
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) FindLatestByCategory(categoryID uint, limit int) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Preload("Price").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) SearchByTitle(term string) ([]models.Property, error) {
	var properties []models.Property
	// LOWER(...) LIKE keeps the substring match case-insensitive on
	// both postgres and mysql.
	err := r.db.Preload("Price").
		Where("LOWER(title) LIKE LOWER(?)", "%"+term+"%").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

func (r *PropertyRepositoryImpl) Update(property *models.Property) error {
	return r.db.Model(property).Select("*").Omit("id", "created_at", "user_id").Updates(property).Error
}

func (r *PropertyRepositoryImpl) Delete(property *models.Property) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(property).Error
	})
}

func (r *PropertyRepositoryImpl) Transaction(fn func(tx PropertyRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&PropertyRepositoryImpl{db: tx})
	})
}
