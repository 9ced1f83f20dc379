package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) Create(context.Context, Product) (Product, error) { return Product{}, errBackend }
func (failingStore) Get(context.Context, uuid.UUID) (Product, bool, error) {
	return Product{}, false, errBackend
}
func (failingStore) List(context.Context) ([]Product, error) { return nil, errBackend }
func (failingStore) Update(context.Context, uuid.UUID, Product) (Product, bool, error) {
	return Product{}, false, errBackend
}
func (failingStore) Delete(context.Context, uuid.UUID) (bool, error) { return false, errBackend }
func (failingStore) Ping(context.Context) error { return errBackend }

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	store := NewEmptyMemStore()
	svc := NewService(store)

	p, err := svc.CreateProduct(ctx, "Pen", "Blue ink pen", 1.5, "Office")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)

	got, ok, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestService_CreateProduct_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemStore())

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 100; i++ {
		p, err := svc.CreateProduct(ctx, "n", "d", 1, "c")
		require.NoError(t, err)
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestService_CreateProduct_ZeroPriceAllowed(t *testing.T) {
	_, err := NewService(NewEmptyMemStore()).CreateProduct(context.Background(), "n", "d", 0, "c")
	require.NoError(t, err)
}

func TestService_CreateProduct_NegativePrice(t *testing.T) {
	store := NewEmptyMemStore()
	_, err := NewService(store).CreateProduct(context.Background(), "n", "d", -0.01, "c")

	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "price cannot be negative")
	assert.Zero(t, store.Len())
}

func TestService_UpdateProduct_PartialPrice(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewEmptyMemStore())
	p, _ := svc.CreateProduct(ctx, "Pen", "Blue ink pen", 1.5, "Office")

	updated, ok, err := svc.UpdateProduct(ctx, p.ID, ProductPatch{Price: ptr(9.99)})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 9.99, updated.Price)
	assert.Equal(t, p.Name, updated.Name)
	assert.Equal(t, p.Description, updated.Description)
	assert.Equal(t, p.Category, updated.Category)
	assert.Equal(t, p.ID, updated.ID)

	stored, _, _ := svc.GetProduct(ctx, p.ID)
	assert.Equal(t, updated, stored)
}

func TestService_UpdateProduct_NotFound(t *testing.T) {
	_, ok, err := NewService(NewMemStore()).UpdateProduct(context.Background(), uuid.New(), ProductPatch{Name: ptr("x")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_UpdateProduct_NegativePriceCheckedFirst(t *testing.T) {
	// The price rule fires even for unknown ids.
	_, ok, err := NewService(NewMemStore()).UpdateProduct(context.Background(), uuid.New(), ProductPatch{Price: ptr(-1.0)})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, ok)
}

func TestService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewEmptyMemStore())
	p, _ := svc.CreateProduct(ctx, "n", "d", 1, "c")

	ok, err := svc.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_GetAllProducts(t *testing.T) {
	all, err := NewService(NewMemStore()).GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestService_PropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingStore{})
	id := uuid.New()

	_, err := svc.CreateProduct(ctx, "n", "d", 1, "c")
	assert.ErrorIs(t, err, errBackend)

	_, _, err = svc.GetProduct(ctx, id)
	assert.ErrorIs(t, err, errBackend)

	_, err = svc.GetAllProducts(ctx)
	assert.ErrorIs(t, err, errBackend)

	_, _, err = svc.UpdateProduct(ctx, id, ProductPatch{})
	assert.ErrorIs(t, err, errBackend)

	_, err = svc.DeleteProduct(ctx, id)
	assert.ErrorIs(t, err, errBackend)
}
