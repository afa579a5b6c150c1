package user

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
)

// UserRepository specifies panel operator database operations.
type UserRepository interface {
	StoreUser(ctx context.Context, u *entity.User) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
