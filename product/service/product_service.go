package service

import (
	"context"
	"errors"

	"github.com/abdhalim18/inventory-backend/entity"
	productpkg "github.com/abdhalim18/inventory-backend/product"
	"github.com/google/uuid"
)

// ErrDuplicateSKU is returned when a SKU is already taken by another product.
var ErrDuplicateSKU = errors.New("product with this SKU already exists")

// ErrInsufficientStock is returned when a stock adjustment would go negative.
var ErrInsufficientStock = errors.New("insufficient stock for adjustment")

type productService struct {
	repo productpkg.ProductRepository
}

// NewProductService constructs a ProductService backed by the provided repository.
func NewProductService(repo productpkg.ProductRepository) productpkg.ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context, f productpkg.ProductFilter) ([]entity.Product, error) {
	return s.repo.ListProducts(ctx, f)
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, req productpkg.CreateProductRequest) (*entity.Product, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.SKU == "" {
		return nil, errors.New("sku is required")
	}
	exists, err := s.repo.SKUExists(ctx, req.SKU, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSKU
	}
	status := req.Status
	if status == "" {
		status = entity.ProductActive
	}
	p := &entity.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Status:      status,
		CategoryID:  req.CategoryID,
	}
	return s.repo.StoreProduct(ctx, p)
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req productpkg.UpdateProductRequest) (*entity.Product, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.SKU == "" {
		return nil, errors.New("sku is required")
	}
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.SKUExists(ctx, req.SKU, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSKU
	}
	p.Name = req.Name
	p.SKU = req.SKU
	p.Description = req.Description
	p.Price = req.Price
	p.Cost = req.Cost
	p.Stock = req.Stock
	p.MinStock = req.MinStock
	if req.Status != "" {
		p.Status = req.Status
	}
	p.CategoryID = req.CategoryID
	p.Category = nil
	return s.repo.UpdateProduct(ctx, p)
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *productService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	affected, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// zero rows: either the product is missing or the delta was rejected
		if _, err := s.repo.GetProductByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientStock
	}
	return s.repo.GetProductByID(ctx, id)
}

func (s *productService) ListLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.repo.ListLowStock(ctx)
}
