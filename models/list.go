package models

// List - именованный список в рамках поездки.
type List struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Title     string `json:"title"`
	TripID    uint   `json:"trip_id" gorm:"column:trip_id;not null;index"`
	AppUserID uint   `json:"app_user_id" gorm:"column:app_user_id;not null;index"`
}

func (List) TableName() string {
	return "list"
}

// ListItem - строка списка. Удаление отдельной строки всегда мягкое
// (IsDeleted); жёсткое удаление происходит только вместе со списком.
type ListItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	ListID    uint   `json:"list_id" gorm:"column:list_id;not null;index"`
	IsChecked bool   `json:"is_checked" gorm:"default:false"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

func (ListItem) TableName() string {
	return "list_item"
}
