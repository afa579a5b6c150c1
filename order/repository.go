package order

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// OrderFilter narrows ListOrders. Zero values mean "no filter".
type OrderFilter struct {
	Query         string
	Status        entity.OrderStatus
	PaymentStatus entity.PaymentStatus
	CustomerID    *uuid.UUID
}

// Repository defines DB operations for orders and their items.
type Repository interface {
	ListOrders(ctx context.Context, f OrderFilter) ([]entity.Order, error)
	// GetOrderByID loads the order with its items preloaded.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// CreateOrder inserts the order and its items in a single transaction.
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status *entity.OrderStatus, payment *entity.PaymentStatus) error
	// DeleteOrder removes the order; items are removed by the cascade FK.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
