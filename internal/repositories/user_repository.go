package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bienesraices/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByConfirmToken(token string) (*models.User, error)
	FindByResetToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByConfirmToken(token string) (*models.User, error) {
	return r.findByToken("confirm_token", token)
}

func (r *UserRepositoryImpl) FindByResetToken(token string) (*models.User, error) {
	return r.findByToken("reset_token", token)
}

func (r *UserRepositoryImpl) findByToken(column, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUserNotFound
	}
	var user models.User
	err := r.db.First(&user, column+" = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	// Save with Select("*") so cleared token fields are written as
	// empty strings instead of being skipped as zero values.
	return r.db.Model(user).Select("*").Omit("id", "created_at").Updates(user).Error
}
