package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abdhalim18/inventory-backend/entity"
	orderpkg "github.com/abdhalim18/inventory-backend/order"
	"github.com/abdhalim18/inventory-backend/realtime"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
	hub     *realtime.Hub
}

func NewOrderHandler(svc orderpkg.Service, hub *realtime.Hub) *OrderHandler {
	return &OrderHandler{service: svc, hub: hub}
}

type orderItemPayload struct {
	ProductID   *string  `json:"product_id"`
	ProductName string   `json:"product_name"`
	UnitPrice   *float64 `json:"unit_price"`
	Quantity    int      `json:"quantity" binding:"required"`
}

type createOrderPayload struct {
	CustomerID     *string            `json:"customer_id"`
	DiscountAmount float64            `json:"discount_amount"`
	TaxAmount      float64            `json:"tax_amount"`
	Notes          *string            `json:"notes"`
	Items          []orderItemPayload `json:"items" binding:"required"`
}

type updateOrderPayload struct {
	CustomerID     *string  `json:"customer_id"`
	SetCustomer    bool     `json:"set_customer"`
	Status         *string  `json:"status"`
	PaymentStatus  *string  `json:"payment_status"`
	DiscountAmount *float64 `json:"discount_amount"`
	TaxAmount      *float64 `json:"tax_amount"`
	Notes          *string  `json:"notes"`
}

type orderStatusPayload struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

func parseOptionalUUID(raw *string, field string) (*uuid.UUID, bool, string) {
	if raw == nil || *raw == "" {
		return nil, true, ""
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, false, "invalid " + field
	}
	return &id, true, ""
}

func (h *OrderHandler) notify(event string, payload any) {
	if h.hub != nil {
		h.hub.Broadcast(event, payload)
	}
}

// ListOrders returns orders filtered by ?q=, ?status=, ?payment_status= and ?customer_id=.
func (h *OrderHandler) ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := orderpkg.OrderFilter{
			Query:         c.Query("q"),
			Status:        entity.OrderStatus(c.Query("status")),
			PaymentStatus: entity.PaymentStatus(c.Query("payment_status")),
		}
		if raw := c.Query("customer_id"); raw != "" {
			cid, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id"})
				return
			}
			f.CustomerID = &cid
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListOrders(ctx, f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// GetOrder returns one order with its items.
func (h *OrderHandler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": o})
	}
}

func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		customerID, ok, msg := parseOptionalUUID(p.CustomerID, "customer_id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		req := orderpkg.CreateOrderRequest{
			CustomerID:     customerID,
			DiscountAmount: p.DiscountAmount,
			TaxAmount:      p.TaxAmount,
			Notes:          p.Notes,
		}
		for _, it := range p.Items {
			productID, ok, msg := parseOptionalUUID(it.ProductID, "product_id")
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			req.Items = append(req.Items, orderpkg.OrderItemInput{
				ProductID:   productID,
				ProductName: it.ProductName,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
			})
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateOrder(ctx, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order", "detail": err.Error()})
			return
		}
		h.notify("order.created", created)
		c.JSON(http.StatusCreated, gin.H{"order": created})
	}
}

func (h *OrderHandler) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p updateOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		customerID, ok, msg := parseOptionalUUID(p.CustomerID, "customer_id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		req := orderpkg.UpdateOrderRequest{
			CustomerID:     customerID,
			SetCustomer:    p.SetCustomer || p.CustomerID != nil,
			DiscountAmount: p.DiscountAmount,
			TaxAmount:      p.TaxAmount,
			Notes:          p.Notes,
		}
		if p.Status != nil {
			st := entity.OrderStatus(*p.Status)
			req.Status = &st
		}
		if p.PaymentStatus != nil {
			ps := entity.PaymentStatus(*p.PaymentStatus)
			req.PaymentStatus = &ps
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateOrder(ctx, id, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order", "detail": err.Error()})
			return
		}
		h.notify("order.updated", updated)
		c.JSON(http.StatusOK, gin.H{"order": updated})
	}
}

// UpdateOrderStatus changes status and/or payment_status. No transition rules
// apply; the check constraints are the only gatekeepers.
func (h *OrderHandler) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p orderStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		if p.Status == nil && p.PaymentStatus == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status or payment_status is required"})
			return
		}
		var status *entity.OrderStatus
		var payment *entity.PaymentStatus
		if p.Status != nil {
			st := entity.OrderStatus(*p.Status)
			status = &st
		}
		if p.PaymentStatus != nil {
			ps := entity.PaymentStatus(*p.PaymentStatus)
			payment = &ps
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateStatus(ctx, id, status, payment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status", "detail": err.Error()})
			return
		}
		h.notify("order.updated", updated)
		c.JSON(http.StatusOK, gin.H{"order": updated})
	}
}

// DeleteOrder removes an order; its items are removed by the cascade FK.
func (h *OrderHandler) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteOrder(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order", "detail": err.Error()})
			return
		}
		h.notify("order.deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
