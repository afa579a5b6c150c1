package repository

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	orderpkg "github.com/abdhalim18/inventory-backend/order"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormOrderRepo struct{ db *gorm.DB }

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository { return &GormOrderRepo{db: db} }

func (r *GormOrderRepo) ListOrders(ctx context.Context, f orderpkg.OrderFilter) ([]entity.Order, error) {
	var list []entity.Order
	tx := r.db.WithContext(ctx).Preload("Customer").Order("created_at DESC")
	if f.Query != "" {
		tx = tx.Where("order_number ILIKE ?", "%"+f.Query+"%")
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		tx = tx.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.CustomerID != nil {
		tx = tx.Where("customer_id = ?", *f.CustomerID)
	}
	if err := tx.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder relies on GORM association handling: the order row and its item
// rows are inserted inside one transaction.
func (r *GormOrderRepo) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	err := r.db.WithContext(ctx).
		Omit("Items", "Customer").
		Save(o).Error
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status *entity.OrderStatus, payment *entity.PaymentStatus) error {
	updates := map[string]any{}
	if status != nil {
		updates["status"] = *status
	}
	if payment != nil {
		updates["payment_status"] = *payment
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormOrderRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}
