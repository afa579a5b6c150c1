package product

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// ProductFilter narrows ListProducts. Zero values mean "no filter".
type ProductFilter struct {
	Query      string
	Status     entity.ProductStatus
	CategoryID *uuid.UUID
}

// ProductRepository specifies product related database operations.
type ProductRepository interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SKUExists(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error)
	// AdjustStock applies a relative delta in a single guarded UPDATE and
	// reports the number of rows changed. Zero rows means the product does
	// not exist or the delta would take stock below zero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int64, error)
	// ListLowStock returns products whose stock is at or below their min_stock.
	ListLowStock(ctx context.Context) ([]entity.Product, error)
}
