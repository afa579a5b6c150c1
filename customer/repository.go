package customer

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// CustomerRepository specifies customer related database operations.
type CustomerRepository interface {
	ListCustomers(ctx context.Context, query string) ([]entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
