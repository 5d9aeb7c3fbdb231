package models

import "time"

type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);unique;not null" json:"phone"`
	Mail      string    `gorm:"type:varchar(100);unique;not null" json:"mail"`
	Password  string    `gorm:"type:varchar(200);not null" json:"-"`
	Role      string    `gorm:"type:varchar(100);not null" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
