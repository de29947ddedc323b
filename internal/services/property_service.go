package services

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bienesraices/internal/logger"
	"bienesraices/internal/models"
	"bienesraices/internal/repositories"
	"bienesraices/internal/services/dto"
	"bienesraices/internal/storage"
	"bienesraices/pkg/apperrors"
)

// Featured home-page categories, fixed by the seed data.
const (
	CategoryHouses     uint = 1
	CategoryApartments uint = 2
)

// HomeData is the home page aggregate.
type HomeData struct {
	Categories []models.Category
	Prices     []models.Price
	Houses     []models.Property
	Apartments []models.Property
}

type PropertyService interface {
	HomePage() (*HomeData, error)
	// Catalog returns the reference data the create/edit forms need.
	Catalog() ([]models.Category, []models.Price, error)
	ListByCategory(categoryID uint) (*models.Category, []models.Property, error)
	Search(term string) ([]models.Property, error)
	// GetPublished fetches a listing for the public page. Unpublished
	// listings are reported as not found.
	GetPublished(id string) (*models.Property, error)
	ListByOwner(ownerID string, page int) (*dto.OwnerPage, error)
	Create(ownerID string, form *dto.PropertyForm) (*models.Property, error)
	// GetUnpublishedOwned fetches a listing for the attach-image step:
	// it must exist, be unpublished and belong to the caller.
	GetUnpublishedOwned(id, ownerID string) (*models.Property, error)
	// AttachImage stores the upload and publishes the listing in the
	// same update. This is the only path that publishes.
	AttachImage(ctx context.Context, id, ownerID, originalName string, reader io.Reader, size int64, contentType string) error
	GetOwned(id, ownerID string) (*models.Property, error)
	Update(id, ownerID string, form *dto.PropertyForm) error
	TogglePublished(id, ownerID string) (bool, error)
	Delete(ctx context.Context, id, ownerID string) error
	// MessagesFor returns the inbox of an owned listing.
	MessagesFor(id, ownerID string) ([]models.Message, error)
}

type PropertyServiceImpl struct {
	propertyRepo repositories.PropertyRepository
	catalogRepo  repositories.CatalogRepository
	messageRepo  repositories.MessageRepository
	files        storage.Storage
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	catalogRepo repositories.CatalogRepository,
	messageRepo repositories.MessageRepository,
	files storage.Storage,
) PropertyService {
	return &PropertyServiceImpl{
		propertyRepo: propertyRepo,
		catalogRepo:  catalogRepo,
		messageRepo:  messageRepo,
		files:        files,
	}
}

func (s *PropertyServiceImpl) HomePage() (*HomeData, error) {
	categories, err := s.catalogRepo.AllCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	prices, err := s.catalogRepo.AllPrices()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	houses, err := s.propertyRepo.FindLatestByCategory(CategoryHouses, repositories.FeaturedLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	apartments, err := s.propertyRepo.FindLatestByCategory(CategoryApartments, repositories.FeaturedLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &HomeData{
		Categories: categories,
		Prices:     prices,
		Houses:     houses,
		Apartments: apartments,
	}, nil
}

func (s *PropertyServiceImpl) Catalog() ([]models.Category, []models.Price, error) {
	categories, err := s.catalogRepo.AllCategories()
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	prices, err := s.catalogRepo.AllPrices()
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return categories, prices, nil
}

func (s *PropertyServiceImpl) ListByCategory(categoryID uint) (*models.Category, []models.Property, error) {
	category, err := s.catalogRepo.FindCategory(categoryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}

	properties, err := s.propertyRepo.FindByCategory(categoryID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return category, properties, nil
}

func (s *PropertyServiceImpl) Search(term string) ([]models.Property, error) {
	properties, err := s.propertyRepo.SearchByTitle(strings.TrimSpace(term))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return properties, nil
}

func (s *PropertyServiceImpl) GetPublished(id string) (*models.Property, error) {
	property, err := s.propertyRepo.FindByIDWithRelations(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !property.Published {
		return nil, apperrors.ErrNotFound(repositories.ErrPropertyNotFound)
	}

	return property, nil
}

func (s *PropertyServiceImpl) ListByOwner(ownerID string, page int) (*dto.OwnerPage, error) {
	limit := repositories.OwnerPageSize
	offset := (page * limit) - limit

	properties, err := s.propertyRepo.FindByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.propertyRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.PropertySummary, 0, len(properties))
	for _, p := range properties {
		summary := dto.PropertySummary{
			ID:           p.ID,
			Title:        p.Title,
			Image:        p.Image,
			Published:    p.Published,
			MessageCount: len(p.Messages),
		}
		if p.Category != nil {
			summary.CategoryName = p.Category.Name
		}
		if p.Price != nil {
			summary.PriceName = p.Price.Name
		}
		summaries = append(summaries, summary)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.OwnerPage{
		Properties:  summaries,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

// Create persists a new listing unpublished and without an image.
// The form is already field-validated by the handler.
func (s *PropertyServiceImpl) Create(ownerID string, form *dto.PropertyForm) (*models.Property, error) {
	property, err := propertyFromForm(form)
	if err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	property.UserID = ownerID
	property.Image = ""
	property.Published = false

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return property, nil
}

func (s *PropertyServiceImpl) GetUnpublishedOwned(id, ownerID string) (*models.Property, error) {
	property, err := s.getOwned(id, ownerID)
	if err != nil {
		return nil, err
	}

	if property.Published {
		return nil, apperrors.ErrAlreadyPublished
	}

	return property, nil
}

func (s *PropertyServiceImpl) AttachImage(ctx context.Context, id, ownerID, originalName string, reader io.Reader, size int64, contentType string) error {
	property, err := s.GetUnpublishedOwned(id, ownerID)
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.NewString() + ext

	if err := s.files.Save(ctx, filename, reader, size, contentType); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorageError, "propiedades", "Failed to store image", 500)
	}

	// Image filename and publication flag flip in one transaction so a
	// listing can never be published without an image.
	err = s.propertyRepo.Transaction(func(tx repositories.PropertyRepository) error {
		property.Image = filename
		property.Published = true
		return tx.Update(property)
	})
	if err != nil {
		// Compensate: the row was not updated, drop the stored file.
		if delErr := s.files.Delete(ctx, filename); delErr != nil {
			logger.CtxError(ctx, "failed to clean up orphaned image", "image", filename, "error", delErr)
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *PropertyServiceImpl) GetOwned(id, ownerID string) (*models.Property, error) {
	return s.getOwned(id, ownerID)
}

// Update overwrites the mutable fields. Owner, image and publication
// state are untouched regardless of the submitted payload.
func (s *PropertyServiceImpl) Update(id, ownerID string, form *dto.PropertyForm) error {
	property, err := s.getOwned(id, ownerID)
	if err != nil {
		return err
	}

	updated, err := propertyFromForm(form)
	if err != nil {
		return apperrors.ValidationError(err.Error())
	}

	property.Title = updated.Title
	property.Description = updated.Description
	property.Rooms = updated.Rooms
	property.Parking = updated.Parking
	property.Bathrooms = updated.Bathrooms
	property.Street = updated.Street
	property.Lat = updated.Lat
	property.Lng = updated.Lng
	property.PriceID = updated.PriceID
	property.CategoryID = updated.CategoryID

	if err := s.propertyRepo.Update(property); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// TogglePublished flips the publication flag and returns the new
// state. Ownership is checked here even though the original UI only
// exposes the button to the owner.
func (s *PropertyServiceImpl) TogglePublished(id, ownerID string) (bool, error) {
	property, err := s.getOwned(id, ownerID)
	if err != nil {
		return false, err
	}

	property.Published = !property.Published

	if err := s.propertyRepo.Update(property); err != nil {
		return false, apperrors.InternalError(err)
	}

	return property.Published, nil
}

// Delete removes the stored image first, then the row together with
// its messages. A missing image file is logged, never silently
// skipped.
func (s *PropertyServiceImpl) Delete(ctx context.Context, id, ownerID string) error {
	property, err := s.getOwned(id, ownerID)
	if err != nil {
		return err
	}

	if property.Image != "" {
		if err := s.files.Delete(ctx, property.Image); err != nil {
			if apperrors.Is(err, storage.ErrNotExists) {
				logger.CtxError(ctx, "stored image already missing on delete",
					"property_id", property.ID, "image", property.Image)
			} else {
				return apperrors.Wrap(err, apperrors.CodeStorageError, "propiedades", "Failed to delete image", 500)
			}
		} else {
			logger.CtxInfo(ctx, "deleted listing image", "image", property.Image)
		}
	}

	if err := s.propertyRepo.Delete(property); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *PropertyServiceImpl) MessagesFor(id, ownerID string) ([]models.Message, error) {
	if _, err := s.getOwned(id, ownerID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByProperty(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return messages, nil
}

// getOwned enforces the existence + ownership guard shared by every
// mutating listing operation.
func (s *PropertyServiceImpl) getOwned(id, ownerID string) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !property.IsOwnedBy(ownerID) {
		return nil, apperrors.ErrNotOwner
	}

	return property, nil
}

// IsSeller is the capability flag surfaced to the public listing view.
// It never bypasses the publication check.
func IsSeller(userID, ownerID string) bool {
	return userID != "" && userID == ownerID
}

func propertyFromForm(form *dto.PropertyForm) (*models.Property, error) {
	rooms, err := strconv.Atoi(form.Rooms)
	if err != nil {
		return nil, err
	}
	parking, err := strconv.Atoi(form.Parking)
	if err != nil {
		return nil, err
	}
	bathrooms, err := strconv.Atoi(form.Bathrooms)
	if err != nil {
		return nil, err
	}
	priceID, err := strconv.ParseUint(form.Price, 10, 32)
	if err != nil {
		return nil, err
	}
	categoryID, err := strconv.ParseUint(form.Category, 10, 32)
	if err != nil {
		return nil, err
	}

	return &models.Property{
		Title:       form.Title,
		Description: form.Description,
		Rooms:       rooms,
		Parking:     parking,
		Bathrooms:   bathrooms,
		Street:      form.Street,
		Lat:         form.Lat,
		Lng:         form.Lng,
		PriceID:     uint(priceID),
		CategoryID:  uint(categoryID),
	}, nil
}
