package order

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// OrderItemInput describes one line of a new order. When ProductID is set the
// service snapshots the product's name and price unless overrides are given;
// otherwise ProductName and UnitPrice are required.
type OrderItemInput struct {
	ProductID   *uuid.UUID
	ProductName string
	UnitPrice   *float64
	Quantity    int
}

// CreateOrderRequest carries the data required to create an order.
// Discount and tax are supplied by the caller; the service computes item
// subtotals and the order total.
type CreateOrderRequest struct {
	CustomerID     *uuid.UUID
	DiscountAmount float64
	TaxAmount      float64
	Notes          *string
	Items          []OrderItemInput
}

// UpdateOrderRequest edits header fields of an existing order. Nil pointers
// leave the corresponding field unchanged; the total is recomputed from the
// stored items whenever discount or tax change.
type UpdateOrderRequest struct {
	CustomerID     *uuid.UUID
	SetCustomer    bool
	Status         *entity.OrderStatus
	PaymentStatus  *entity.PaymentStatus
	DiscountAmount *float64
	TaxAmount      *float64
	Notes          *string
}

// Service exposes order-related business operations.
type Service interface {
	ListOrders(ctx context.Context, f OrderFilter) ([]entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status *entity.OrderStatus, payment *entity.PaymentStatus) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
