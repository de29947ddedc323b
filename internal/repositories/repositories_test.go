package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestPropertyFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "properties"`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID("missing")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "published", "user_id"}).
		AddRow("prop-1", "Casa céntrica", true, "owner-1")
	mock.ExpectQuery(`SELECT (.+) FROM "properties"`).
		WithArgs("prop-1", 1).
		WillReturnRows(rows)

	property, err := repo.FindByID("prop-1")
	require.NoError(t, err)
	assert.Equal(t, "Casa céntrica", property.Title)
	assert.True(t, property.Published)
	assert.Equal(t, "owner-1", property.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyCountByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "properties"`).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.CountByOwner("owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertySearchByTitleIsCaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title"}).
		AddRow("prop-1", "Casa en la playa")
	mock.ExpectQuery(`SELECT (.+) FROM "properties" WHERE LOWER\(title\) LIKE LOWER\(\$1\)`).
		WithArgs("%casa%").
		WillReturnRows(rows)
	// Price preload for the matched row.
	mock.ExpectQuery(`SELECT (.+) FROM "prices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	properties, err := repo.SearchByTitle("casa")
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Casa en la playa", properties[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "confirmed"}).
		AddRow("user-1", "Juan", "juan@correo.com", true)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WithArgs("juan@correo.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("juan@correo.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.True(t, user.Confirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WithArgs("nadie@correo.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail("nadie@correo.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByTokenSkipsEmptyToken(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUserRepository(db)

	// An empty token must never reach the database: it would match
	// every user whose token column was already cleared.
	_, err := repo.FindByConfirmToken("")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByResetToken("")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCategoryFindNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "categories"`).
		WithArgs(uint(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindCategory(99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
