package services

import (
	"log"
	"os"
	"time"

	"github.com/mel-lim/listmaker-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartGuestSweepCron запускает ежечасную зачистку просроченных гостевых
// аккаунтов. Каждый гость удаляется каскадно вместе со своими поездками.
func StartGuestSweepCron(db *gorm.DB, ttl time.Duration) *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		logFile, _ := os.OpenFile("logs/guest_sweep.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		logger := log.New(logFile, "", log.LstdFlags)
		defer logFile.Close()

		deleted, err := SweepExpiredGuests(db, ttl)
		if err != nil {
			logger.Printf("guest sweep finished with error after %d deletions: %v", deleted, err)
			return
		}
		if deleted > 0 {
			logger.Printf("guest sweep deleted %d expired guest accounts", deleted)
		}
	})
	c.Start()
	log.Printf("[GUEST SWEEP] hourly cron started, guest TTL %s", ttl)
	return c
}

// SweepExpiredGuests удаляет гостей старше ttl. Возвращает число удалённых
// аккаунтов; при ошибке на одном из гостей останавливается.
func SweepExpiredGuests(db *gorm.DB, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	var guests []models.AppUser
	if err := db.
		Where("is_guest = ? AND date_created < ?", true, cutoff).
		Find(&guests).Error; err != nil {
		return 0, err
	}

	cascade := NewCascadeService(db)
	deleted := 0
	for _, guest := range guests {
		if err := cascade.DeleteAppUserCascade(guest.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
