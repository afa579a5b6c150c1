package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	customerpkg "github.com/abdhalim18/inventory-backend/customer"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	rows map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{rows: map[uuid.UUID]*entity.Customer{}}
}

func (r *fakeCustomerRepo) ListCustomers(_ context.Context, query string) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range r.rows {
		if query == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) GetCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) StoreCustomer(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.rows[c.ID] = c
	return c, nil
}

func (r *fakeCustomerRepo) UpdateCustomer(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	if _, ok := r.rows[c.ID]; !ok {
		return nil, errors.New("record not found")
	}
	r.rows[c.ID] = c
	return c, nil
}

func (r *fakeCustomerRepo) DeleteCustomer(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestCreateCustomerPersistsSubmittedFields(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	created, err := svc.CreateCustomer(context.Background(), customerpkg.CreateCustomerRequest{
		Name:    "Acme GmbH",
		Email:   strptr("buyer@acme.test"),
		Phone:   strptr("+49 30 1234"),
		Address: strptr("Berlin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", created.Name)
	assert.Equal(t, "buyer@acme.test", *created.Email)
	assert.Equal(t, "+49 30 1234", *created.Phone)
	assert.Equal(t, "Berlin", *created.Address)
	// status defaults when the form omits it
	assert.Equal(t, entity.CustomerActive, created.Status)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), customerpkg.CreateCustomerRequest{})
	assert.Error(t, err)
}

func TestUpdateCustomerReplacesEditableFields(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	created, err := svc.CreateCustomer(context.Background(), customerpkg.CreateCustomerRequest{Name: "Old Name"})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(context.Background(), created.ID, customerpkg.UpdateCustomerRequest{
		Name:   "New Name",
		Status: entity.CustomerInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, entity.CustomerInactive, updated.Status)
	assert.Nil(t, updated.Email)
}

func TestUpdateCustomerUnknownID(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.UpdateCustomer(context.Background(), uuid.New(), customerpkg.UpdateCustomerRequest{Name: "X"})
	assert.Error(t, err)
}

func TestDeleteCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	created, err := svc.CreateCustomer(context.Background(), customerpkg.CreateCustomerRequest{Name: "Gone Soon"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), created.ID))
	_, err = svc.GetCustomer(context.Background(), created.ID)
	assert.Error(t, err)
}
