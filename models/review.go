package models

import "time"

type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Star        int       `gorm:"not null" json:"star"`
	CustomerID  uint      `gorm:"not null" json:"customer_id"`
	Customer    Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer"`
	ProductID   uint      `gorm:"not null" json:"product_id"`
	Product     Product   `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
