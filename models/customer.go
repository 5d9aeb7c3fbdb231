package models

import "time"

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Location      string    `gorm:"type:varchar(200)" json:"location"`
	Phone         string    `gorm:"type:varchar(20);unique;not null" json:"phone"`
	Mail          string    `gorm:"type:varchar(100);unique;not null" json:"mail"`
	BirthDate     string    `gorm:"type:varchar(50)" json:"birth_date"`
	Password      string    `gorm:"type:varchar(200);not null" json:"-"`
	WalletBalance float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"wallet_balance"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
