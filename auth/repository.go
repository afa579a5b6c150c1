package auth

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// Repository exposes read operations used for authentication.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
