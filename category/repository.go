package category

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// CategoryRepository specifies category related database operations.
type CategoryRepository interface {
	ListCategories(ctx context.Context, query string) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	StoreCategory(ctx context.Context, c *entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, c *entity.Category) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	// NameExists reports whether another category already uses the name.
	// excludeID skips the row being edited so renaming to the same name passes.
	NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}
