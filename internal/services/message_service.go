package services

import (
	"bienesraices/internal/models"
	"bienesraices/internal/repositories"
	"bienesraices/internal/services/dto"
	"bienesraices/pkg/apperrors"
)

type MessageService interface {
	// Create records an inquiry against an existing listing. The
	// sender must be authenticated; the handler redirects anonymous
	// visitors to login before this is reached.
	Create(propertyID, senderID string, form *dto.MessageForm) error
}

type MessageServiceImpl struct {
	messageRepo  repositories.MessageRepository
	propertyRepo repositories.PropertyRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	propertyRepo repositories.PropertyRepository,
) MessageService {
	return &MessageServiceImpl{
		messageRepo:  messageRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *MessageServiceImpl) Create(propertyID, senderID string, form *dto.MessageForm) error {
	if _, err := s.propertyRepo.FindByID(propertyID); err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	message := &models.Message{
		Body:       form.Body,
		PropertyID: propertyID,
		UserID:     senderID,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}
