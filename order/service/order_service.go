package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abdhalim18/inventory-backend/entity"
	orderpkg "github.com/abdhalim18/inventory-backend/order"
	productpkg "github.com/abdhalim18/inventory-backend/product"
	"github.com/google/uuid"
)

type orderService struct {
	repo     orderpkg.Repository
	products productpkg.ProductRepository
}

// NewOrderService constructs the order service. The product repository is
// used to snapshot product name/price onto order items at creation time.
func NewOrderService(repo orderpkg.Repository, products productpkg.ProductRepository) orderpkg.Service {
	return &orderService{repo: repo, products: products}
}

func roundCents(v float64) float64 { return math.Round(v*100) / 100 }

// newOrderNumber generates e.g. "ORD-20250831-7F3A1B2C". Uniqueness is
// backstopped by the unique index on order_number.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}

func (s *orderService) ListOrders(ctx context.Context, f orderpkg.OrderFilter) ([]entity.Order, error) {
	return s.repo.ListOrders(ctx, f)
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("order must have at least one item")
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	var itemsTotal float64
	for _, in := range req.Items {
		if in.Quantity <= 0 {
			return nil, errors.New("item quantity must be positive")
		}
		name := in.ProductName
		var unitPrice float64
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		if in.ProductID != nil {
			p, err := s.products.GetProductByID(ctx, *in.ProductID)
			if err != nil {
				return nil, fmt.Errorf("item product lookup: %w", err)
			}
			if name == "" {
				name = p.Name
			}
			if in.UnitPrice == nil {
				unitPrice = p.Price
			}
		}
		if name == "" {
			return nil, errors.New("item product_name is required when no product is referenced")
		}
		if unitPrice < 0 {
			return nil, errors.New("item unit_price must be non-negative")
		}
		subtotal := roundCents(unitPrice * float64(in.Quantity))
		itemsTotal += subtotal
		items = append(items, entity.OrderItem{
			ProductID:   in.ProductID,
			ProductName: name,
			UnitPrice:   unitPrice,
			Quantity:    in.Quantity,
			Subtotal:    subtotal,
		})
	}

	o := &entity.Order{
		OrderNumber:    newOrderNumber(),
		CustomerID:     req.CustomerID,
		DiscountAmount: req.DiscountAmount,
		TaxAmount:      req.TaxAmount,
		TotalAmount:    roundCents(itemsTotal - req.DiscountAmount + req.TaxAmount),
		Notes:          req.Notes,
		Items:          items,
	}
	return s.repo.CreateOrder(ctx, o)
}

func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, req orderpkg.UpdateOrderRequest) (*entity.Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SetCustomer {
		o.CustomerID = req.CustomerID
		o.Customer = nil
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		o.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		o.Notes = req.Notes
	}
	if req.DiscountAmount != nil || req.TaxAmount != nil {
		if req.DiscountAmount != nil {
			o.DiscountAmount = *req.DiscountAmount
		}
		if req.TaxAmount != nil {
			o.TaxAmount = *req.TaxAmount
		}
		var itemsTotal float64
		for _, it := range o.Items {
			itemsTotal += it.Subtotal
		}
		o.TotalAmount = roundCents(itemsTotal - o.DiscountAmount + o.TaxAmount)
	}
	return s.repo.UpdateOrder(ctx, o)
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status *entity.OrderStatus, payment *entity.PaymentStatus) (*entity.Order, error) {
	if status == nil && payment == nil {
		return nil, errors.New("status or payment_status is required")
	}
	if err := s.repo.UpdateOrderStatus(ctx, id, status, payment); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOrder(ctx, id)
}
