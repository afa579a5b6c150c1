package service

import (
	"context"
	"errors"

	customerpkg "github.com/abdhalim18/inventory-backend/customer"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// customerService implements CustomerService.
type customerService struct {
	repo customerpkg.CustomerRepository
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
func NewCustomerService(repo customerpkg.CustomerRepository) customerpkg.CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) ListCustomers(ctx context.Context, query string) ([]entity.Customer, error) {
	return s.repo.ListCustomers(ctx, query)
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, req customerpkg.CreateCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	status := req.Status
	if status == "" {
		status = entity.CustomerActive
	}
	c := &entity.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  status,
	}
	return s.repo.StoreCustomer(ctx, c)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req customerpkg.UpdateCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.Address = req.Address
	if req.Status != "" {
		c.Status = req.Status
	}
	return s.repo.UpdateCustomer(ctx, c)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCustomer(ctx, id)
}
