package services_test

import (
	"testing"
	"time"

	"template-manager/backend/internal/models"
	"template-manager/backend/internal/repositories"
	"template-manager/backend/internal/services"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, firstName, lastName, email string) models.User {
	t.Helper()

	hashed, err := services.HashPassword("secret-password", 4)
	require.NoError(t, err)

	user := models.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
