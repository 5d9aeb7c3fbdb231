package models

import "time"

type Order struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerID   uint       `gorm:"not null" json:"customer_id"`
	Customer     Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer"`
	ProductID    uint       `gorm:"not null" json:"product_id"`
	Product      Product    `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product"`
	Quantity     int        `gorm:"not null" json:"quantity"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
}

const OrderStatusPending = "pending"
