package services

import (
	"testing"

	"github.com/mel-lim/listmaker-backend/database"
	"github.com/mel-lim/listmaker-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Тестовая база: in-memory sqlite с одним соединением в пуле, чтобы
// конкурентные транзакции сериализовались на выдаче соединения.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedTemplates(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.AppUser {
	t.Helper()
	user := models.AppUser{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
