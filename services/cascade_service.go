package services

import (
	"fmt"
	"sync"

	"github.com/mel-lim/listmaker-backend/models"

	"gorm.io/gorm"
)

// CascadeService - каскадное удаление: поездка со всеми зависимыми строками
// и пользователь со всеми его поездками.
type CascadeService struct {
	db *gorm.DB
}

func NewCascadeService(db *gorm.DB) *CascadeService {
	return &CascadeService{db: db}
}

// DeleteTripCascade удаляет в одной транзакции строки списков, списки, связь
// владения и саму поездку. Поездка должна удалиться ровно одной строкой -
// ноль означает, что поездка исчезла посреди операции, и это ошибка
// консистентности, а не повод молча закоммитить.
func (s *CascadeService) DeleteTripCascade(tripID uint) error {
	sess, err := BeginSession(s.db)
	if err != nil {
		return err
	}
	defer sess.End()
	tx := sess.Tx()

	var listIDs []uint
	if err := tx.Model(&models.List{}).
		Where("trip_id = ?", tripID).
		Pluck("id", &listIDs).Error; err != nil {
		return err
	}

	if len(listIDs) > 0 {
		if err := tx.Where("list_id IN ?", listIDs).Delete(&models.ListItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&models.List{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("trip_id = ?", tripID).Delete(&models.AppUserTrip{}).Error; err != nil {
		return err
	}

	res := tx.Where("id = ?", tripID).Delete(&models.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("%w: trip %d vanished during delete", ErrConsistency, tripID)
	}

	return sess.Commit()
}

// DeleteAppUserCascade удаляет все поездки пользователя и его учётную запись.
// Поездки - независимые поддеревья, каждая удаляется своей транзакцией;
// разгон по горутинам со сбором первой ошибки, строка пользователя удаляется
// только после того, как все поездки ушли.
func (s *CascadeService) DeleteAppUserCascade(appUserID uint) error {
	var tripIDs []uint
	if err := s.db.Model(&models.AppUserTrip{}).
		Where("app_user_id = ?", appUserID).
		Pluck("trip_id", &tripIDs).Error; err != nil {
		return err
	}

	if len(tripIDs) > 0 {
		var wg sync.WaitGroup
		errCh := make(chan error, len(tripIDs))
		for _, tripID := range tripIDs {
			wg.Add(1)
			go func(id uint) {
				defer wg.Done()
				if err := s.DeleteTripCascade(id); err != nil {
					errCh <- err
				}
			}(tripID)
		}
		wg.Wait()
		close(errCh)
		if err := <-errCh; err != nil {
			return err
		}
	}

	res := s.db.Where("id = ?", appUserID).Delete(&models.AppUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("%w: app user %d was not deleted", ErrConsistency, appUserID)
	}
	return nil
}
