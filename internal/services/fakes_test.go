package services

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"

	"bienesraices/internal/models"
	"bienesraices/internal/repositories"
)

// In-memory repository and storage doubles. They copy models on the way
// in and out so a service mutating a returned struct cannot silently
// change the "database".

type fakeUserRepo struct {
	users     map[string]models.User
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByConfirmToken(token string) (*models.User, error) {
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, user := range r.users {
		if user.ConfirmToken == token {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, user := range r.users {
		if user.ResetToken == token {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

type fakeEmailProvider struct {
	confirmations []sentEmail
	resets        []sentEmail
	sendErr       error
}

type sentEmail struct {
	To    string
	Name  string
	Token string
}

func (p *fakeEmailProvider) SendConfirmation(to, name, token string) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.confirmations = append(p.confirmations, sentEmail{To: to, Name: name, Token: token})
	return nil
}

func (p *fakeEmailProvider) SendPasswordReset(to, name, token string) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.resets = append(p.resets, sentEmail{To: to, Name: name, Token: token})
	return nil
}

type fakePropertyRepo struct {
	properties map[string]models.Property
	updateErr  error

	lastOwnerLimit  int
	lastOwnerOffset int
	lastSearchTerm  string
	ownerTotal      int64
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]models.Property)}
}

func (r *fakePropertyRepo) FindByID(id string) (*models.Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return nil, repositories.ErrPropertyNotFound
	}
	return &property, nil
}

func (r *fakePropertyRepo) FindByIDWithRelations(id string) (*models.Property, error) {
	return r.FindByID(id)
}

func (r *fakePropertyRepo) FindByOwner(ownerID string, limit, offset int) ([]models.Property, error) {
	r.lastOwnerLimit = limit
	r.lastOwnerOffset = offset
	var properties []models.Property
	for _, property := range r.properties {
		if property.UserID == ownerID {
			properties = append(properties, property)
		}
	}
	return properties, nil
}

func (r *fakePropertyRepo) CountByOwner(ownerID string) (int64, error) {
	if r.ownerTotal != 0 {
		return r.ownerTotal, nil
	}
	var total int64
	for _, property := range r.properties {
		if property.UserID == ownerID {
			total++
		}
	}
	return total, nil
}

func (r *fakePropertyRepo) FindByCategory(categoryID uint) ([]models.Property, error) {
	var properties []models.Property
	for _, property := range r.properties {
		if property.CategoryID == categoryID {
			properties = append(properties, property)
		}
	}
	return properties, nil
}

func (r *fakePropertyRepo) FindLatestByCategory(categoryID uint, limit int) ([]models.Property, error) {
	properties, _ := r.FindByCategory(categoryID)
	if len(properties) > limit {
		properties = properties[:limit]
	}
	return properties, nil
}

func (r *fakePropertyRepo) SearchByTitle(term string) ([]models.Property, error) {
	r.lastSearchTerm = term
	return nil, nil
}

func (r *fakePropertyRepo) Create(property *models.Property) error {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	r.properties[property.ID] = *property
	return nil
}

func (r *fakePropertyRepo) Update(property *models.Property) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.properties[property.ID]; !ok {
		return repositories.ErrPropertyNotFound
	}
	r.properties[property.ID] = *property
	return nil
}

func (r *fakePropertyRepo) Delete(property *models.Property) error {
	delete(r.properties, property.ID)
	return nil
}

func (r *fakePropertyRepo) Transaction(fn func(tx repositories.PropertyRepository) error) error {
	return fn(r)
}

type fakeCatalogRepo struct {
	categories []models.Category
	prices     []models.Price
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		categories: []models.Category{
			{ID: 1, Name: "Casa"},
			{ID: 2, Name: "Departamento"},
		},
		prices: []models.Price{
			{ID: 1, Name: "0 - 50,000 USD"},
		},
	}
}

func (r *fakeCatalogRepo) AllCategories() ([]models.Category, error) {
	return r.categories, nil
}

func (r *fakeCatalogRepo) AllPrices() ([]models.Price, error) {
	return r.prices, nil
}

func (r *fakeCatalogRepo) FindCategory(id uint) (*models.Category, error) {
	for _, category := range r.categories {
		if category.ID == id {
			c := category
			return &c, nil
		}
	}
	return nil, repositories.ErrCategoryNotFound
}

type fakeMessageRepo struct {
	messages  []models.Message
	createErr error
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) FindByProperty(propertyID string) ([]models.Message, error) {
	var messages []models.Message
	for _, message := range r.messages {
		if message.PropertyID == propertyID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

type fakeStorage struct {
	saved     map[string][]byte
	deleted   []string
	saveErr   error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, name string, reader io.Reader, _ int64, _ string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return err
	}
	s.saved[name] = buf.Bytes()
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, name string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, name)
	delete(s.saved, name)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.saved[name]
	return ok, nil
}

func (s *fakeStorage) URL(name string) string {
	return "/uploads/" + name
}
