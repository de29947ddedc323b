package repositories

import (
	"gorm.io/gorm"

	"bienesraices/internal/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByProperty(propertyID string) ([]models.Message, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByProperty(propertyID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("User").
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&messages).Error
	for i := range messages {
		if messages[i].User != nil {
			messages[i].User.PasswordHash = ""
		}
	}
	return messages, err
}
