package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bienesraices/internal/models"
	"bienesraices/internal/services/dto"
	"bienesraices/internal/storage"
	"bienesraices/pkg/apperrors"
)

func newTestPropertyService() (*PropertyServiceImpl, *fakePropertyRepo, *fakeMessageRepo, *fakeStorage) {
	propertyRepo := newFakePropertyRepo()
	messageRepo := &fakeMessageRepo{}
	files := newFakeStorage()
	service := NewPropertyService(propertyRepo, newFakeCatalogRepo(), messageRepo, files)
	return service.(*PropertyServiceImpl), propertyRepo, messageRepo, files
}

func validPropertyForm() *dto.PropertyForm {
	return &dto.PropertyForm{
		Title:       "Casa en la playa",
		Description: "Casa con vista al mar",
		Rooms:       "3",
		Parking:     "1",
		Bathrooms:   "2",
		Street:      "Calle Principal 123",
		Lat:         "19.4326",
		Lng:         "-99.1332",
		Price:       "1",
		Category:    "1",
	}
}

func seedProperty(repo *fakePropertyRepo, ownerID string, published bool, image string) *models.Property {
	property := &models.Property{
		Title:       "Casa céntrica",
		Description: "Muy bien ubicada",
		Rooms:       2,
		Parking:     1,
		Bathrooms:   1,
		Street:      "Av. Reforma 1",
		Lat:         "19.43",
		Lng:         "-99.13",
		Image:       image,
		Published:   published,
		PriceID:     1,
		CategoryID:  1,
		UserID:      ownerID,
	}
	_ = repo.Create(property)
	return property
}

func TestCreateStartsUnpublishedWithoutImage(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()

	property, err := service.Create("owner-1", validPropertyForm())
	require.NoError(t, err)

	stored := repo.properties[property.ID]
	assert.False(t, stored.Published)
	assert.Empty(t, stored.Image)
	assert.Equal(t, "owner-1", stored.UserID)
	assert.Equal(t, "Casa en la playa", stored.Title)
	assert.Equal(t, 3, stored.Rooms)
}

func TestCreateRejectsNonNumericFields(t *testing.T) {
	service, _, _, _ := newTestPropertyService()

	form := validPropertyForm()
	form.Rooms = "tres"

	_, err := service.Create("owner-1", form)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestAttachImagePublishes(t *testing.T) {
	service, repo, _, files := newTestPropertyService()
	property := seedProperty(repo, "owner-1", false, "")

	err := service.AttachImage(context.Background(), property.ID, "owner-1",
		"foto.PNG", strings.NewReader("imagebytes"), 10, "image/png")
	require.NoError(t, err)

	stored := repo.properties[property.ID]
	assert.True(t, stored.Published)
	require.NotEmpty(t, stored.Image)
	assert.True(t, strings.HasSuffix(stored.Image, ".png"), "extension should be normalized: %s", stored.Image)

	_, saved := files.saved[stored.Image]
	assert.True(t, saved, "image bytes should be stored under the generated name")
}

func TestAttachImageRejectsAlreadyPublished(t *testing.T) {
	service, repo, _, files := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "existing.jpg")

	err := service.AttachImage(context.Background(), property.ID, "owner-1",
		"foto.jpg", strings.NewReader("imagebytes"), 10, "image/jpeg")

	assert.ErrorIs(t, err, apperrors.ErrAlreadyPublished)
	assert.Len(t, files.saved, 0)
}

func TestAttachImageRejectsNonOwner(t *testing.T) {
	service, repo, _, files := newTestPropertyService()
	property := seedProperty(repo, "owner-1", false, "")

	err := service.AttachImage(context.Background(), property.ID, "intruder",
		"foto.jpg", strings.NewReader("imagebytes"), 10, "image/jpeg")

	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Len(t, files.saved, 0)
	assert.False(t, repo.properties[property.ID].Published)
}

func TestAttachImageCleansUpOnUpdateFailure(t *testing.T) {
	service, repo, _, files := newTestPropertyService()
	property := seedProperty(repo, "owner-1", false, "")
	repo.updateErr = assert.AnError

	err := service.AttachImage(context.Background(), property.ID, "owner-1",
		"foto.jpg", strings.NewReader("imagebytes"), 10, "image/jpeg")
	require.Error(t, err)

	// The stored file must not outlive the failed publish.
	assert.Len(t, files.saved, 0)
	require.Len(t, files.deleted, 1)
	assert.False(t, repo.properties[property.ID].Published)
}

func TestTogglePublished(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "casa.jpg")

	published, err := service.TogglePublished(property.ID, "owner-1")
	require.NoError(t, err)
	assert.False(t, published)
	assert.False(t, repo.properties[property.ID].Published)

	published, err = service.TogglePublished(property.ID, "owner-1")
	require.NoError(t, err)
	assert.True(t, published)
	assert.True(t, repo.properties[property.ID].Published)
}

func TestTogglePublishedRejectsNonOwner(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "casa.jpg")

	_, err := service.TogglePublished(property.ID, "intruder")
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.True(t, repo.properties[property.ID].Published)
}

func TestUpdatePreservesOwnerImageAndState(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "casa.jpg")

	form := validPropertyForm()
	form.Title = "Título nuevo"

	err := service.Update(property.ID, "owner-1", form)
	require.NoError(t, err)

	stored := repo.properties[property.ID]
	assert.Equal(t, "Título nuevo", stored.Title)
	assert.Equal(t, "owner-1", stored.UserID)
	assert.Equal(t, "casa.jpg", stored.Image)
	assert.True(t, stored.Published)
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()
	property := seedProperty(repo, "owner-1", false, "")

	err := service.Update(property.ID, "intruder", validPropertyForm())
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Equal(t, "Casa céntrica", repo.properties[property.ID].Title)
}

func TestGetPublishedHidesUnpublished(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()
	property := seedProperty(repo, "owner-1", false, "")

	_, err := service.GetPublished(property.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetPublishedUnknownID(t *testing.T) {
	service, _, _, _ := newTestPropertyService()

	_, err := service.GetPublished("missing")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestListByOwnerPagination(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()
	repo.ownerTotal = 25

	page, err := service.ListByOwner("owner-1", 2)
	require.NoError(t, err)

	assert.Equal(t, 10, repo.lastOwnerLimit)
	assert.Equal(t, 10, repo.lastOwnerOffset)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 10, page.Offset)
}

func TestListByOwnerFirstPageOffset(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()

	_, err := service.ListByOwner("owner-1", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.lastOwnerOffset)
}

func TestDeleteRemovesImageAndRow(t *testing.T) {
	service, repo, _, files := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "casa.jpg")
	files.saved["casa.jpg"] = []byte("imagebytes")

	err := service.Delete(context.Background(), property.ID, "owner-1")
	require.NoError(t, err)

	assert.Contains(t, files.deleted, "casa.jpg")
	_, exists := repo.properties[property.ID]
	assert.False(t, exists)
}

func TestDeleteToleratesMissingImageFile(t *testing.T) {
	service, repo, _, files := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "casa.jpg")
	files.deleteErr = storage.ErrNotExists

	err := service.Delete(context.Background(), property.ID, "owner-1")
	require.NoError(t, err)

	_, exists := repo.properties[property.ID]
	assert.False(t, exists)
}

func TestSearchTrimsTerm(t *testing.T) {
	service, repo, _, _ := newTestPropertyService()

	_, err := service.Search("   casa  ")
	require.NoError(t, err)

	assert.Equal(t, "casa", repo.lastSearchTerm)
}

func TestMessagesForEnforcesOwnership(t *testing.T) {
	service, repo, messageRepo, _ := newTestPropertyService()
	property := seedProperty(repo, "owner-1", true, "casa.jpg")
	messageRepo.messages = append(messageRepo.messages, models.Message{
		BaseModel:  models.BaseModel{ID: "msg-1"},
		Body:       "Me interesa la propiedad, ¿sigue disponible?",
		PropertyID: property.ID,
		UserID:     "buyer-1",
	})

	messages, err := service.MessagesFor(property.ID, "owner-1")
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	_, err = service.MessagesFor(property.ID, "intruder")
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestIsSeller(t *testing.T) {
	assert.True(t, IsSeller("u1", "u1"))
	assert.False(t, IsSeller("u1", "u2"))
	assert.False(t, IsSeller("", ""))
}
