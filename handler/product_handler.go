package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abdhalim18/inventory-backend/entity"
	productpkg "github.com/abdhalim18/inventory-backend/product"
	productsvc "github.com/abdhalim18/inventory-backend/product/service"
	"github.com/abdhalim18/inventory-backend/realtime"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductHandler bundles dependencies for product-related HTTP handlers.
type ProductHandler struct {
	service productpkg.ProductService
	hub     *realtime.Hub
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(svc productpkg.ProductService, hub *realtime.Hub) *ProductHandler {
	return &ProductHandler{service: svc, hub: hub}
}

type productPayload struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
	Status      string  `json:"status"`
	CategoryID  *string `json:"category_id"`
}

func (p productPayload) toRequest() (productpkg.CreateProductRequest, error) {
	req := productpkg.CreateProductRequest{
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Status:      entity.ProductStatus(p.Status),
	}
	if p.CategoryID != nil && *p.CategoryID != "" {
		cid, err := uuid.Parse(*p.CategoryID)
		if err != nil {
			return req, errors.New("invalid category_id")
		}
		req.CategoryID = &cid
	}
	return req, nil
}

func (h *ProductHandler) notify(event string, payload any) {
	if h.hub != nil {
		h.hub.Broadcast(event, payload)
	}
}

// ListProducts returns products filtered by ?q=, ?status= and ?category_id=.
func (h *ProductHandler) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := productpkg.ProductFilter{
			Query:  c.Query("q"),
			Status: entity.ProductStatus(c.Query("status")),
		}
		if raw := c.Query("category_id"); raw != "" {
			cid, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
				return
			}
			f.CategoryID = &cid
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListProducts(ctx, f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

func (h *ProductHandler) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		p, err := h.service.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}

func (h *ProductHandler) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req, err := p.toRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateProduct(ctx, req)
		if err != nil {
			if errors.Is(err, productsvc.ErrDuplicateSKU) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product", "detail": err.Error()})
			return
		}
		h.notify("product.created", created)
		c.JSON(http.StatusCreated, gin.H{"product": created})
	}
}

func (h *ProductHandler) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req, err := p.toRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateProduct(ctx, id, req)
		if err != nil {
			if errors.Is(err, productsvc.ErrDuplicateSKU) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product", "detail": err.Error()})
			return
		}
		h.notify("product.updated", updated)
		c.JSON(http.StatusOK, gin.H{"product": updated})
	}
}

func (h *ProductHandler) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteProduct(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product", "detail": err.Error()})
			return
		}
		h.notify("product.deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

type adjustStockPayload struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustStock applies a relative stock delta (positive restock, negative draw-down).
func (h *ProductHandler) AdjustStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var p adjustStockPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.AdjustStock(ctx, id, p.Delta)
		if err != nil {
			if errors.Is(err, productsvc.ErrInsufficientStock) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to adjust stock", "detail": err.Error()})
			return
		}
		h.notify("product.updated", updated)
		c.JSON(http.StatusOK, gin.H{"product": updated})
	}
}

// ListLowStock returns products at or below their minimum stock threshold.
func (h *ProductHandler) ListLowStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListLowStock(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list low stock products", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}
