package services

import (
	"fmt"

	"github.com/mel-lim/listmaker-backend/models"

	"gorm.io/gorm"
)

// TripService - жизненный цикл поездки: создание с генерацией стартовых
// списков и удаление со всеми зависимыми строками.
type TripService struct {
	db      *gorm.DB
	cascade *CascadeService
}

func NewTripService(db *gorm.DB) *TripService {
	return &TripService{db: db, cascade: NewCascadeService(db)}
}

// NewTripResult - ответ создания поездки в формате фронтенда:
// индексы Lists и AllListItems соответствуют друг другу.
type NewTripResult struct {
	TripID       uint                `json:"tripId"`
	Lists        []models.List       `json:"lists"`
	AllListItems [][]models.ListItem `json:"allListItems"`
}

// CreateTrip создаёт поездку, связь владения и стартовые списки в одной
// транзакции. wantsTemplate=false кладёт в каждый список одну строку-заглушку
// "Edit me" вместо шаблонных строк. Либо появляется всё, либо ничего.
func (s *TripService) CreateTrip(appUserID uint, name, category, duration string, wantsTemplate bool) (*NewTripResult, error) {
	sess, err := BeginSession(s.db)
	if err != nil {
		return nil, err
	}
	defer sess.End()
	tx := sess.Tx()

	trip := models.Trip{Name: name, Category: category, Duration: duration}
	if err := tx.Create(&trip).Error; err != nil {
		return nil, err
	}

	relation := models.AppUserTrip{AppUserID: appUserID, TripID: trip.ID}
	if err := tx.Create(&relation).Error; err != nil {
		return nil, err
	}

	templates, err := resolveTemplates(tx, category, duration)
	if err != nil {
		return nil, err
	}

	result := &NewTripResult{
		TripID:       trip.ID,
		Lists:        []models.List{},
		AllListItems: [][]models.ListItem{},
	}

	for _, template := range templates {
		list := models.List{Title: template.Title, TripID: trip.ID, AppUserID: appUserID}
		if err := tx.Create(&list).Error; err != nil {
			return nil, err
		}

		var itemNames []string
		if wantsTemplate {
			var templateItems []models.TemplateListItem
			if err := tx.
				Where("template_list_id = ?", template.ID).
				Order("id ASC").
				Find(&templateItems).Error; err != nil {
				return nil, err
			}
			for _, templateItem := range templateItems {
				itemNames = append(itemNames, templateItem.Name)
			}
		} else {
			itemNames = []string{"Edit me"}
		}

		items := make([]models.ListItem, 0, len(itemNames))
		for _, itemName := range itemNames {
			item := models.ListItem{Name: itemName, ListID: list.ID}
			if err := tx.Create(&item).Error; err != nil {
				return nil, err
			}
			items = append(items, item)
		}

		result.Lists = append(result.Lists, list)
		result.AllListItems = append(result.AllListItems, items)
	}

	if err := sess.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// AllTrips возвращает поездки пользователя через таблицу связей.
func (s *TripService) AllTrips(appUserID uint) ([]models.Trip, error) {
	trips := []models.Trip{}
	err := s.db.
		Raw(`SELECT t.id, t.name, t.category, t.duration
		     FROM trip t
		     INNER JOIN app_users_trips aut ON t.id = aut.trip_id
		     WHERE aut.app_user_id = ?
		     ORDER BY t.id ASC`, appUserID).
		Scan(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// EditTripName переименовывает поездку. Ровно одна строка должна измениться.
func (s *TripService) EditTripName(tripID uint, newName string) error {
	res := s.db.Model(&models.Trip{}).Where("id = ?", tripID).Update("name", newName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("%w: trip %d was not updated", ErrConsistency, tripID)
	}
	return nil
}

// DeleteTrip удаляет поездку со всеми зависимыми строками.
func (s *TripService) DeleteTrip(tripID uint) error {
	return s.cascade.DeleteTripCascade(tripID)
}
