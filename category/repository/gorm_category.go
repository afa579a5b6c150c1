package repository

import (
	"context"

	categorypkg "github.com/abdhalim18/inventory-backend/category"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepo implements category.CategoryRepository using GORM.
type GormCategoryRepo struct {
	db *gorm.DB
}

func NewGormCategoryRepo(db *gorm.DB) categorypkg.CategoryRepository {
	return &GormCategoryRepo{db: db}
}

func (r *GormCategoryRepo) ListCategories(ctx context.Context, query string) ([]entity.Category, error) {
	var list []entity.Category
	tx := r.db.WithContext(ctx).Order("name ASC")
	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if err := tx.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCategoryRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCategoryRepo) StoreCategory(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCategoryRepo) UpdateCategory(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCategoryRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *GormCategoryRepo) NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&entity.Category{}).Where("name = ?", name)
	if excludeID != nil {
		tx = tx.Where("id <> ?", *excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
