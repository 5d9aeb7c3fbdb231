package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);unique;not null" json:"name"`
	Details   string    `gorm:"type:varchar(500)" json:"details"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
