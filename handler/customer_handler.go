package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	customerpkg "github.com/abdhalim18/inventory-backend/customer"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/abdhalim18/inventory-backend/realtime"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.CustomerService
	hub     *realtime.Hub
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService, hub *realtime.Hub) *CustomerHandler {
	return &CustomerHandler{service: svc, hub: hub}
}

type customerPayload struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  string  `json:"status"`
}

func (p customerPayload) toRequest() customerpkg.CreateCustomerRequest {
	return customerpkg.CreateCustomerRequest{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		Status:  entity.CustomerStatus(p.Status),
	}
}

func (h *CustomerHandler) notify(event string, payload any) {
	if h.hub != nil {
		h.hub.Broadcast(event, payload)
	}
}

// ListCustomers returns all customers, optionally filtered by ?q= substring.
func (h *CustomerHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListCustomers(ctx, c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": list})
	}
}

func (h *CustomerHandler) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.GetCustomer(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": cust})
	}
}

func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateCustomer(ctx, p.toRequest())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer", "detail": err.Error()})
			return
		}
		h.notify("customer.created", created)
		c.JSON(http.StatusCreated, gin.H{"customer": created})
	}
}

func (h *CustomerHandler) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateCustomer(ctx, id, p.toRequest())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer", "detail": err.Error()})
			return
		}
		h.notify("customer.updated", updated)
		c.JSON(http.StatusOK, gin.H{"customer": updated})
	}
}

func (h *CustomerHandler) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteCustomer(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer", "detail": err.Error()})
			return
		}
		h.notify("customer.deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
	}
}
