package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bienesraices/internal/services/dto"
	"bienesraices/pkg/apperrors"
)

func TestMessageCreate(t *testing.T) {
	propertyRepo := newFakePropertyRepo()
	messageRepo := &fakeMessageRepo{}
	service := NewMessageService(messageRepo, propertyRepo)

	property := seedProperty(propertyRepo, "owner-1", true, "casa.jpg")

	form := &dto.MessageForm{Body: "Hola, me interesa esta propiedad. ¿Sigue disponible?"}
	err := service.Create(property.ID, "buyer-1", form)
	require.NoError(t, err)

	require.Len(t, messageRepo.messages, 1)
	stored := messageRepo.messages[0]
	assert.Equal(t, form.Body, stored.Body)
	assert.Equal(t, property.ID, stored.PropertyID)
	assert.Equal(t, "buyer-1", stored.UserID)
}

func TestMessageCreateUnknownProperty(t *testing.T) {
	propertyRepo := newFakePropertyRepo()
	messageRepo := &fakeMessageRepo{}
	service := NewMessageService(messageRepo, propertyRepo)

	form := &dto.MessageForm{Body: "Hola, me interesa esta propiedad. ¿Sigue disponible?"}
	err := service.Create("missing", "buyer-1", form)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Empty(t, messageRepo.messages)
}
