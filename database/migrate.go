package database

import (
	"github.com/mel-lim/listmaker-backend/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.AppUser{},
		&models.Trip{},
		&models.AppUserTrip{},
		&models.List{},
		&models.ListItem{},
		&models.TemplateList{},
		&models.TemplateListItem{},
		&models.DeletedList{},
		&models.DeletedListItem{},
	); err != nil {
		return err
	}

	// Индексы под горячие выборки каскадов и fetchlists
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_list_trip_id ON list(trip_id)`,
		`CREATE INDEX IF NOT EXISTS idx_list_item_list_id ON list_item(list_id)`,
		`CREATE INDEX IF NOT EXISTS idx_app_users_trips_app_user_id ON app_users_trips(app_user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_app_users_trips_trip_id ON app_users_trips(trip_id)`,
		`CREATE INDEX IF NOT EXISTS idx_template_list_category ON template_list(trip_category)`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
