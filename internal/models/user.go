package models

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is the account profile behind both the booking flow (role client)
// and the admin area (role admin). Admin accounts are provisioned directly
// in the database; there is no promotion endpoint.
type User struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
