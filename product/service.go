package product

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// CreateProductRequest carries the data required to create a product.
type CreateProductRequest struct {
	Name        string
	SKU         string
	Description *string
	Price       float64
	Cost        float64
	Stock       int
	MinStock    int
	Status      entity.ProductStatus
	CategoryID  *uuid.UUID
}

type UpdateProductRequest = CreateProductRequest

// ProductService exposes product-related business operations.
type ProductService interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	// AdjustStock applies a relative delta to the product's stock. A delta that
	// would take stock below zero is rejected and leaves the row unchanged.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error)
	ListLowStock(ctx context.Context) ([]entity.Product, error)
}
