package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Deleting a category detaches its products
// (products.category_id is set to NULL by the foreign key policy).
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text;default:null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
