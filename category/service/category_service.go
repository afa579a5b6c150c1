package service

import (
	"context"
	"errors"

	categorypkg "github.com/abdhalim18/inventory-backend/category"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
)

// ErrDuplicateName is returned when a category name is already taken.
var ErrDuplicateName = errors.New("category with this name already exists")

type categoryService struct {
	repo categorypkg.CategoryRepository
}

// NewCategoryService constructs a CategoryService backed by the provided repository.
func NewCategoryService(repo categorypkg.CategoryRepository) categorypkg.CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context, query string) ([]entity.Category, error) {
	return s.repo.ListCategories(ctx, query)
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, req categorypkg.CreateCategoryRequest) (*entity.Category, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	exists, err := s.repo.NameExists(ctx, req.Name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}
	c := &entity.Category{Name: req.Name, Description: req.Description}
	return s.repo.StoreCategory(ctx, c)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req categorypkg.UpdateCategoryRequest) (*entity.Category, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.NameExists(ctx, req.Name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}
	c.Name = req.Name
	c.Description = req.Description
	return s.repo.UpdateCategory(ctx, c)
}

// DeleteCategory removes the category; dependent products are detached by the
// ON DELETE SET NULL foreign key, not by application code.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}
