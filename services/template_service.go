package services

import (
	"github.com/mel-lim/listmaker-backend/models"

	"gorm.io/gorm"
)

// TemplateService отдаёт шаблонные списки для преднаполнения новой поездки.
// Только чтение.
type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

func (s *TemplateService) ResolveTemplates(category, duration string) ([]models.TemplateList, error) {
	return resolveTemplates(s.db, category, duration)
}

// resolveTemplates работает и на голом db, и внутри транзакции.
// Категория "other" получает набор hiking - поведение продукта, не меняем.
func resolveTemplates(db *gorm.DB, category, duration string) ([]models.TemplateList, error) {
	if category == "other" {
		category = "hiking"
	}
	var lists []models.TemplateList
	err := db.
		Where("trip_category = ? AND (trip_duration = 'any' OR trip_duration = ?)", category, duration).
		Order("id ASC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}
