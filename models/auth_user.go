package models

// AuthUser backs the bearer-token subsystem (/api/auth). Kept separate from
// the per-kind Admin/Manager/Staff/Customer credentials on purpose: the two
// identity models are parallel and not unified.
type AuthUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(200);unique;not null" json:"username"`
	Password string `gorm:"type:varchar(200);not null" json:"-"`
	Roles    []Role `gorm:"many2many:user_roles" json:"roles"`
}

func (AuthUser) TableName() string {
	return "users"
}

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);unique;not null" json:"name"`
}
