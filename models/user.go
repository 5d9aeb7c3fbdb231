package models

import "time"

// User is the standalone per-kind account record managed through /user CRUD.
// It is not the same identity as AuthUser, which backs the token subsystem.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(200);not null" json:"username"`
	Password  string    `gorm:"type:varchar(200);not null" json:"-"`
	Role      string    `gorm:"type:varchar(100);not null" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string {
	return "app_users"
}
