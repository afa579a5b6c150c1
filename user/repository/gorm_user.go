package repository

import (
	"context"

	"github.com/abdhalim18/inventory-backend/entity"
	userpkg "github.com/abdhalim18/inventory-backend/user"
	"gorm.io/gorm"
)

// GormUserRepo implements user.UserRepository using GORM.
type GormUserRepo struct {
	db *gorm.DB
}

func NewGormUserRepo(db *gorm.DB) userpkg.UserRepository {
	return &GormUserRepo{db: db}
}

func (r *GormUserRepo) StoreUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *GormUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) {
	var list []entity.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
