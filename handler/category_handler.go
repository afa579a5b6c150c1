package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	categorypkg "github.com/abdhalim18/inventory-backend/category"
	categorysvc "github.com/abdhalim18/inventory-backend/category/service"
	"github.com/abdhalim18/inventory-backend/realtime"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryHandler bundles dependencies for category-related HTTP handlers.
type CategoryHandler struct {
	service categorypkg.CategoryService
	hub     *realtime.Hub
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(svc categorypkg.CategoryService, hub *realtime.Hub) *CategoryHandler {
	return &CategoryHandler{service: svc, hub: hub}
}

type categoryPayload struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) notify(event string, payload any) {
	if h.hub != nil {
		h.hub.Broadcast(event, payload)
	}
}

func (h *CategoryHandler) ListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListCategories(ctx, c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": list})
	}
}

func (h *CategoryHandler) GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cat, err := h.service.GetCategory(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": cat})
	}
}

func (h *CategoryHandler) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p categoryPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateCategory(ctx, categorypkg.CreateCategoryRequest{Name: p.Name, Description: p.Description})
		if err != nil {
			if errors.Is(err, categorysvc.ErrDuplicateName) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category", "detail": err.Error()})
			return
		}
		h.notify("category.created", created)
		c.JSON(http.StatusCreated, gin.H{"category": created})
	}
}

func (h *CategoryHandler) UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		var p categoryPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateCategory(ctx, id, categorypkg.UpdateCategoryRequest{Name: p.Name, Description: p.Description})
		if err != nil {
			if errors.Is(err, categorysvc.ErrDuplicateName) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category", "detail": err.Error()})
			return
		}
		h.notify("category.updated", updated)
		c.JSON(http.StatusOK, gin.H{"category": updated})
	}
}

// DeleteCategory removes a category. Products referencing it are detached by
// the database (category_id set to NULL), not rejected.
func (h *CategoryHandler) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteCategory(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category", "detail": err.Error()})
			return
		}
		h.notify("category.deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}
