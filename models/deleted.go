package models

// Архивные таблицы: полная замена списков (savelists) перед удалением
// копирует прежние строки сюда в той же транзакции.

type DeletedList struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ListID    uint   `json:"list_id" gorm:"column:list_id;not null;index"`
	Title     string `json:"title"`
	AppUserID uint   `json:"app_user_id" gorm:"column:app_user_id;not null"`
	TripID    uint   `json:"trip_id" gorm:"column:trip_id;not null"`
}

func (DeletedList) TableName() string {
	return "deleted_list"
}

type DeletedListItem struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name"`
	ListID uint   `json:"list_id" gorm:"column:list_id;not null;index"`
}

func (DeletedListItem) TableName() string {
	return "deleted_list_item"
}
