package repository

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	productpkg "github.com/abdhalim18/inventory-backend/product"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepo implements product.ProductRepository using GORM.
type GormProductRepo struct {
	db *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) productpkg.ProductRepository {
	return &GormProductRepo{db: db}
}

func (r *GormProductRepo) ListProducts(ctx context.Context, f productpkg.ProductFilter) ([]entity.Product, error) {
	var list []entity.Product
	tx := r.db.WithContext(ctx).Preload("Category").Order("created_at DESC")
	if f.Query != "" {
		like := "%" + f.Query + "%"
		tx = tx.Where("name ILIKE ? OR sku ILIKE ?", like, like)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.CategoryID != nil {
		tx = tx.Where("category_id = ?", *f.CategoryID)
	}
	if err := tx.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) UpdateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *GormProductRepo) SKUExists(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&entity.Product{}).Where("sku = ?", sku)
	if excludeID != nil {
		tx = tx.Where("id <> ?", *excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdjustStock folds the delta into the row inside one UPDATE so concurrent
// draw-downs cannot both pass the negative-stock guard against stale reads.
func (r *GormProductRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	return tx.RowsAffected, tx.Error
}

func (r *GormProductRepo) ListLowStock(ctx context.Context) ([]entity.Product, error) {
	var list []entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("stock <= min_stock").
		Order("stock ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
