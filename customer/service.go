package customer

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// CreateCustomerRequest carries the data required to create a customer.
type CreateCustomerRequest struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
	Status  entity.CustomerStatus
}

// UpdateCustomerRequest mirrors CreateCustomerRequest; the edit dialog submits
// the full form, so updates replace all editable fields.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerService exposes customer-related business operations.
type CustomerService interface {
	ListCustomers(ctx context.Context, query string) ([]entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
