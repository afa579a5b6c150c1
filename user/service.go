package user

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
)

// RegisterUserRequest carries the data required to register a panel operator.
type RegisterUserRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UserService exposes operator management operations (admin only).
type UserService interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
}
