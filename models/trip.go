package models

// Trip - поездка. Владелец связывается через таблицу app_users_trips.
type Trip struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Category string `json:"category" gorm:"not null"` // например: "ski-tour", "hiking", "other"
	Duration string `json:"duration" gorm:"not null"` // строго: "day" | "overnight"
}

func (Trip) TableName() string {
	return "trip"
}

// AppUserTrip - связь пользователя и поездки. Схема допускает несколько
// владельцев, продукт использует ровно одного.
type AppUserTrip struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	AppUserID uint `json:"app_user_id" gorm:"column:app_user_id;not null;index"`
	TripID    uint `json:"trip_id" gorm:"column:trip_id;not null;index"`
}

func (AppUserTrip) TableName() string {
	return "app_users_trips"
}
