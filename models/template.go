package models

// TemplateList - шаблонный список для преднаполнения новой поездки.
// Данные только читаются; наполняются сидером при старте.
type TemplateList struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"not null"`
	TripCategory string `json:"trip_category" gorm:"column:trip_category;not null;index"`
	TripDuration string `json:"trip_duration" gorm:"column:trip_duration;not null"` // "day" | "overnight" | "any"
}

func (TemplateList) TableName() string {
	return "template_list"
}

type TemplateListItem struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	TemplateListID uint   `json:"template_list_id" gorm:"column:template_list_id;not null;index"`
}

func (TemplateListItem) TableName() string {
	return "template_list_item"
}
