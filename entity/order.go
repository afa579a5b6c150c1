package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates fulfilment states. These are free-standing labels
// guarded by a check constraint; no transition rules exist.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentStatus enumerates payment states of an order.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order is a sales order. Deleting an order cascades to its items; deleting
// the referenced customer detaches the order (customer_id set to NULL).
type Order struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderNumber    string        `json:"order_number" gorm:"type:text;uniqueIndex;not null"`
	CustomerID     *uuid.UUID    `json:"customer_id,omitempty" gorm:"type:uuid;index;default:null"`
	Customer       *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Status         OrderStatus   `json:"status" gorm:"type:text;index;not null;default:'pending';check:status IN ('pending','processing','shipped','delivered','cancelled')"`
	PaymentStatus  PaymentStatus `json:"payment_status" gorm:"type:text;index;not null;default:'unpaid';check:payment_status IN ('unpaid','paid','refunded')"`
	TotalAmount    float64       `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0;check:total_amount >= 0"`
	DiscountAmount float64       `json:"discount_amount" gorm:"type:decimal(12,2);not null;default:0;check:discount_amount >= 0"`
	TaxAmount      float64       `json:"tax_amount" gorm:"type:decimal(12,2);not null;default:0;check:tax_amount >= 0"`
	Notes          *string       `json:"notes,omitempty" gorm:"type:text;default:null"`
	Items          []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// OrderItem is a line of an order. Product name and unit price are
// denormalized snapshots so the line survives product deletion
// (product_id is set to NULL by the foreign key policy).
type OrderItem struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID     uuid.UUID  `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductID   *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid;index;default:null"`
	Product     *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	ProductName string     `json:"product_name" gorm:"type:text;not null"`
	UnitPrice   float64    `json:"unit_price" gorm:"type:decimal(12,2);not null;default:0;check:unit_price >= 0"`
	Quantity    int        `json:"quantity" gorm:"not null;check:quantity > 0"`
	Subtotal    float64    `json:"subtotal" gorm:"type:decimal(12,2);not null;default:0;check:subtotal >= 0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
