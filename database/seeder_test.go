package database

import (
	"testing"

	"github.com/mel-lim/listmaker-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedTemplatesIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedTemplates(db))

	var firstLists, firstItems int64
	db.Model(&models.TemplateList{}).Count(&firstLists)
	db.Model(&models.TemplateListItem{}).Count(&firstItems)
	assert.EqualValues(t, len(templateSeeds), firstLists)
	assert.NotZero(t, firstItems)

	// Повторный запуск ничего не добавляет
	require.NoError(t, SeedTemplates(db))

	var secondLists, secondItems int64
	db.Model(&models.TemplateList{}).Count(&secondLists)
	db.Model(&models.TemplateListItem{}).Count(&secondItems)
	assert.Equal(t, firstLists, secondLists)
	assert.Equal(t, firstItems, secondItems)
}

func TestSeedCoversBothCategoriesAndDurations(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedTemplates(db))

	for _, category := range []string{"ski-tour", "hiking"} {
		for _, duration := range []string{"day", "overnight"} {
			var count int64
			db.Model(&models.TemplateList{}).
				Where("trip_category = ? AND (trip_duration = 'any' OR trip_duration = ?)", category, duration).
				Count(&count)
			assert.NotZero(t, count, "%s/%s has no template lists", category, duration)
		}
	}
}
