package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model any, field string) string {
	t.Helper()
	f, ok := reflect.TypeOf(model).FieldByName(field)
	require.True(t, ok, "field %s not declared", field)
	return f.Tag.Get("gorm")
}

func TestCategoryDeleteDetachesProducts(t *testing.T) {
	assert.Contains(t, gormTag(t, Product{}, "Category"), "OnDelete:SET NULL")
}

func TestCustomerDeleteDetachesOrders(t *testing.T) {
	assert.Contains(t, gormTag(t, Order{}, "Customer"), "OnDelete:SET NULL")
}

func TestOrderDeleteCascadesToItems(t *testing.T) {
	assert.Contains(t, gormTag(t, Order{}, "Items"), "OnDelete:CASCADE")
}

func TestProductDeleteDetachesOrderItems(t *testing.T) {
	assert.Contains(t, gormTag(t, OrderItem{}, "Product"), "OnDelete:SET NULL")
}

func TestUniqueKeysDeclared(t *testing.T) {
	assert.Contains(t, gormTag(t, Category{}, "Name"), "uniqueIndex")
	assert.Contains(t, gormTag(t, Product{}, "SKU"), "uniqueIndex")
	assert.Contains(t, gormTag(t, Order{}, "OrderNumber"), "uniqueIndex")
	assert.Contains(t, gormTag(t, User{}, "Email"), "uniqueIndex")
}

func TestQuantityCheckDeclared(t *testing.T) {
	assert.Contains(t, gormTag(t, OrderItem{}, "Quantity"), "check:quantity > 0")
}
