package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bienesraices/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

// CatalogRepository serves the static reference data: categories and
// price tiers. Both are seeded at deployment and read-only afterwards.
type CatalogRepository interface {
	AllCategories() ([]models.Category, error)
	AllPrices() ([]models.Price, error)
	FindCategory(id uint) (*models.Category, error)
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) AllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepositoryImpl) AllPrices() ([]models.Price, error) {
	var prices []models.Price
	err := r.db.Order("id").Find(&prices).Error
	return prices, err
}

func (r *CatalogRepositoryImpl) FindCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
