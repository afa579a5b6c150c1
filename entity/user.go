package entity

import (
	"time"

	"github.com/google/uuid"
)

// Panel operator roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a panel operator account used to authenticate against the API.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName    string    `json:"first_name" gorm:"type:text;not null"`
	LastName     string    `json:"last_name" gorm:"type:text;not null"`
	Email        string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	Role         string    `json:"role" gorm:"type:text;index;not null;default:'staff';check:role IN ('admin','staff')"`
	Active       bool      `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
