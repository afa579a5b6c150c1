package category

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// CreateCategoryRequest carries the data required to create a category.
type CreateCategoryRequest struct {
	Name        string
	Description *string
}

type UpdateCategoryRequest = CreateCategoryRequest

// CategoryService exposes category-related business operations.
type CategoryService interface {
	ListCategories(ctx context.Context, query string) ([]entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
