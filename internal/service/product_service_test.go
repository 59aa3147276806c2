package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateProductDefaults(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.CreateProduct(&ProductRequest{Name: "Pen", Price: int64Ptr(150)})
	require.NoError(t, err)

	assert.True(t, product.IsAvailable)
	assert.Nil(t, product.Description)
	assert.NotZero(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProductZeroPriceAllowed(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.CreateProduct(&ProductRequest{Name: "Freebie", Price: int64Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), product.Price)
}

func TestCreateProductExplicitlyUnavailable(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.CreateProduct(&ProductRequest{
		Name:        "Pen",
		Price:       int64Ptr(150),
		IsAvailable: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, product.IsAvailable)

	// The explicit false must survive the insert and the reread.
	got, err := svc.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	products, err := svc.GetAvailableProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateProductMissingPrice(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.CreateProduct(&ProductRequest{Name: "Pen"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductFullReplace(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.CreateProduct(&ProductRequest{
		Name:        "Pen",
		Description: strPtr("blue ink"),
		Price:       int64Ptr(150),
		IsAvailable: boolPtr(false),
	})
	require.NoError(t, err)

	// The omitted description and availability must not survive the update.
	updated, err := svc.UpdateProduct(product.ID, &ProductRequest{Name: "Pencil", Price: int64Ptr(99)})
	require.NoError(t, err)

	assert.Equal(t, "Pencil", updated.Name)
	assert.Nil(t, updated.Description)
	assert.Equal(t, int64(99), updated.Price)
	assert.True(t, updated.IsAvailable)
	assert.Equal(t, product.ID, updated.ID)
	assert.Equal(t, product.CreatedAt.Unix(), updated.CreatedAt.Unix())

	got, err := svc.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pencil", got.Name)
	assert.Nil(t, got.Description)
}

func TestDeleteProductSoftDelete(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.CreateProduct(&ProductRequest{Name: "Pen", Price: int64Ptr(150)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(product.ID))

	// Still fetchable by id, flagged unavailable.
	got, err := svc.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	// Excluded from the listing.
	products, err := svc.GetAvailableProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductNotFoundBoundaries(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.GetProductByID(42)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.UpdateProduct(42, &ProductRequest{Name: "Pen", Price: int64Ptr(1)})
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(42), ErrProductNotFound)
}
