package service

import (
	"context"
	"errors"
	"testing"

	categorypkg "github.com/abdhalim18/inventory-backend/category"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	rows map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[uuid.UUID]*entity.Category{}}
}

func (r *fakeCategoryRepo) ListCategories(_ context.Context, _ string) ([]entity.Category, error) {
	var out []entity.Category
	for _, c := range r.rows {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetCategoryByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) StoreCategory(_ context.Context, c *entity.Category) (*entity.Category, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.rows[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) UpdateCategory(_ context.Context, c *entity.Category) (*entity.Category, error) {
	if _, ok := r.rows[c.ID]; !ok {
		return nil, errors.New("record not found")
	}
	r.rows[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeCategoryRepo) NameExists(_ context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	for id, c := range r.rows {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateCategoryPersistsSubmittedFields(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	desc := "Cables, chargers, adapters"
	created, err := svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{
		Name:        "Accessories",
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Accessories", created.Name)
	assert.Equal(t, desc, *created.Description)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{Name: "Accessories"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{Name: "Accessories"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateCategoryKeepingOwnNamePasses(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	created, err := svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{Name: "Accessories"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(context.Background(), created.ID, categorypkg.UpdateCategoryRequest{Name: "Accessories"})
	require.NoError(t, err)
	assert.Equal(t, "Accessories", updated.Name)
}

func TestUpdateCategoryRejectsTakenName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{Name: "Accessories"})
	require.NoError(t, err)
	second, err := svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{Name: "Cables"})
	require.NoError(t, err)

	_, err = svc.UpdateCategory(context.Background(), second.ID, categorypkg.UpdateCategoryRequest{Name: "Accessories"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.CreateCategory(context.Background(), categorypkg.CreateCategoryRequest{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), created.ID))
	_, err = svc.GetCategory(context.Background(), created.ID)
	assert.Error(t, err)
}
