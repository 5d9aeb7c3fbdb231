package models

import "time"

type Manager struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(200);unique;not null" json:"username"`
	Password  string    `gorm:"type:varchar(200);not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
