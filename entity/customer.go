package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerStatus enumerates customer account states.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer represents a buyer record shown and edited in the admin panel.
type Customer struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	Email     *string        `json:"email,omitempty" gorm:"type:text;index;default:null"`
	Phone     *string        `json:"phone,omitempty" gorm:"type:text;default:null"`
	Address   *string        `json:"address,omitempty" gorm:"type:text;default:null"`
	Status    CustomerStatus `json:"status" gorm:"type:text;index;not null;default:'active';check:status IN ('active','inactive')"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
