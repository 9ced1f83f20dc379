package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Store is the storage contract for products. A missing product is reported
// through the bool results, never as an error; errors mean the backend failed.
type Store interface {
	Create(ctx context.Context, p Product) (Product, error)
	Get(ctx context.Context, id uuid.UUID) (Product, bool, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id uuid.UUID, p Product) (Product, bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Ping(ctx context.Context) error
}

// NewStore returns the default backend.
func NewStore() Store {
	return NewMemStore()
}
