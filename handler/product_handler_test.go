package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdhalim18/inventory-backend/entity"
	productpkg "github.com/abdhalim18/inventory-backend/product"
	productsvc "github.com/abdhalim18/inventory-backend/product/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProductService struct {
	products  []entity.Product
	getErr    error
	adjustErr error
}

func (s *fakeProductService) ListProducts(_ context.Context, _ productpkg.ProductFilter) ([]entity.Product, error) {
	return s.products, nil
}

func (s *fakeProductService) GetProduct(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeProductService) CreateProduct(_ context.Context, req productpkg.CreateProductRequest) (*entity.Product, error) {
	p := entity.Product{ID: uuid.New(), Name: req.Name, SKU: req.SKU}
	s.products = append(s.products, p)
	return &p, nil
}

func (s *fakeProductService) UpdateProduct(_ context.Context, id uuid.UUID, req productpkg.UpdateProductRequest) (*entity.Product, error) {
	return &entity.Product{ID: id, Name: req.Name, SKU: req.SKU}, nil
}

func (s *fakeProductService) DeleteProduct(_ context.Context, _ uuid.UUID) error { return nil }

func (s *fakeProductService) AdjustStock(_ context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	if s.adjustErr != nil {
		return nil, s.adjustErr
	}
	return &entity.Product{ID: id, Stock: delta}, nil
}

func (s *fakeProductService) ListLowStock(_ context.Context) ([]entity.Product, error) {
	return s.products, nil
}

func newProductRouter(svc productpkg.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(svc, nil)
	r := gin.New()
	r.GET("/products/:id", h.GetProduct())
	r.POST("/products/:id/adjust-stock", h.AdjustStock())
	return r
}

func TestGetProductUnknownIDReturns404(t *testing.T) {
	r := newProductRouter(&fakeProductService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductBackendErrorReturns500(t *testing.T) {
	r := newProductRouter(&fakeProductService{getErr: context.DeadlineExceeded})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetProductReturnsPayload(t *testing.T) {
	p := entity.Product{ID: uuid.New(), Name: "USB-C Cable", SKU: "USB-C-1M"}
	r := newProductRouter(&fakeProductService{products: []entity.Product{p}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+p.ID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "USB-C-1M")
}

func TestAdjustStockInsufficientReturns409(t *testing.T) {
	r := newProductRouter(&fakeProductService{adjustErr: productsvc.ErrInsufficientStock})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/"+uuid.NewString()+"/adjust-stock", strings.NewReader(`{"delta":-5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdjustStockUnknownProductReturns404(t *testing.T) {
	r := newProductRouter(&fakeProductService{adjustErr: gorm.ErrRecordNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/"+uuid.NewString()+"/adjust-stock", strings.NewReader(`{"delta":3}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
