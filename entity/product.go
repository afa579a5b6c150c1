package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus enumerates the catalog lifecycle of a product.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
)

// Product is a stocked catalog item. Monetary columns are decimal(12,2);
// non-negativity of price/cost/stock is enforced by database check constraints.
type Product struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string        `json:"name" gorm:"type:text;not null"`
	SKU         string        `json:"sku" gorm:"column:sku;type:text;uniqueIndex;not null"`
	Description *string       `json:"description,omitempty" gorm:"type:text;default:null"`
	Price       float64       `json:"price" gorm:"type:decimal(12,2);not null;default:0;check:price >= 0"`
	Cost        float64       `json:"cost" gorm:"type:decimal(12,2);not null;default:0;check:cost >= 0"`
	Stock       int           `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	MinStock    int           `json:"min_stock" gorm:"not null;default:0;check:min_stock >= 0"`
	Status      ProductStatus `json:"status" gorm:"type:text;index;not null;default:'active';check:status IN ('active','inactive','discontinued')"`
	CategoryID  *uuid.UUID    `json:"category_id,omitempty" gorm:"type:uuid;index;default:null"`
	Category    *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
