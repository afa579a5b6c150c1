package service

import (
	"context"
	"testing"

	"github.com/abdhalim18/inventory-backend/entity"
	productpkg "github.com/abdhalim18/inventory-backend/product"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProductRepo struct {
	rows map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[uuid.UUID]*entity.Product{}}
}

func (r *fakeProductRepo) ListProducts(_ context.Context, f productpkg.ProductFilter) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.rows {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) GetProductByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) StoreProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.rows[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) UpdateProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	if _, ok := r.rows[p.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.rows[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) (int64, error) {
	p, ok := r.rows[id]
	if !ok || p.Stock+delta < 0 {
		return 0, nil
	}
	p.Stock += delta
	return 1, nil
}

func (r *fakeProductRepo) DeleteProduct(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeProductRepo) SKUExists(_ context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	for id, p := range r.rows {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.rows {
		if p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func TestCreateProductPersistsSubmittedFields(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	created, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		Name:     "USB-C Cable",
		SKU:      "USB-C-1M",
		Price:    9.99,
		Cost:     2.50,
		Stock:    120,
		MinStock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "USB-C Cable", created.Name)
	assert.Equal(t, "USB-C-1M", created.SKU)
	assert.Equal(t, 9.99, created.Price)
	assert.Equal(t, 2.50, created.Cost)
	assert.Equal(t, 120, created.Stock)
	assert.Equal(t, 10, created.MinStock)
	// status defaults when the form omits it
	assert.Equal(t, entity.ProductActive, created.Status)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "A", SKU: "SKU-1"})
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "B", SKU: "SKU-1"})
	assert.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestUpdateProductKeepingOwnSKUPasses(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	created, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "A", SKU: "SKU-1"})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), created.ID, productpkg.UpdateProductRequest{
		Name:   "A v2",
		SKU:    "SKU-1",
		Status: entity.ProductDiscontinued,
	})
	require.NoError(t, err)
	assert.Equal(t, "A v2", updated.Name)
	assert.Equal(t, entity.ProductDiscontinued, updated.Status)
}

func TestAdjustStockAppliesDelta(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	created, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "A", SKU: "SKU-1", Stock: 10})
	require.NoError(t, err)

	updated, err := svc.AdjustStock(context.Background(), created.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Stock)

	updated, err = svc.AdjustStock(context.Background(), created.ID, 14)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Stock)
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	created, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "A", SKU: "SKU-1", Stock: 3})
	require.NoError(t, err)

	_, err = svc.AdjustStock(context.Background(), created.ID, -5)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// stock unchanged after the rejected adjustment
	p, err := svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
}

func TestAdjustStockGuardsAgainstStaleReads(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	created, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "A", SKU: "SKU-1", Stock: 5})
	require.NoError(t, err)

	// two draw-downs against the same starting stock: the guard must apply
	// to the current row, so only the first succeeds
	updated, err := svc.AdjustStock(context.Background(), created.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stock)

	_, err = svc.AdjustStock(context.Background(), created.ID, -3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	p, err := svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stock)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.AdjustStock(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListLowStockReturnsProductsAtOrBelowThreshold(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "Low", SKU: "LOW", Stock: 2, MinStock: 5})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "At", SKU: "AT", Stock: 5, MinStock: 5})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{Name: "Fine", SKU: "FINE", Stock: 50, MinStock: 5})
	require.NoError(t, err)

	low, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	names := []string{low[0].Name, low[1].Name}
	assert.ElementsMatch(t, []string{"Low", "At"}, names)
}
