package models

import "time"

// AppUser - пользователь приложения. Гостевые аккаунты (IsGuest) живут до
// истечения TTL и удаляются фоновой зачисткой вместе со своими поездками.
type AppUser struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;not null"`
	IsGuest        bool      `json:"is_guest" gorm:"default:false"`
	IsAdmin        bool      `json:"is_admin" gorm:"default:false"`
	DateCreated    time.Time `json:"date_created" gorm:"column:date_created;autoCreateTime"`
	DateModified   time.Time `json:"date_modified" gorm:"column:date_modified;autoUpdateTime"`
}

func (AppUser) TableName() string {
	return "app_user"
}
