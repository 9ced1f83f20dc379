package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidArgument = errors.New("invalid argument")

var errNegativePrice = fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)

// Service applies catalog business rules on top of a Store. It holds no state
// of its own, so one can be built per request around a shared Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) CreateProduct(ctx context.Context, name, description string, price float64, category string) (Product, error) {
	if price < 0 {
		return Product{}, errNegativePrice
	}
	return s.store.Create(ctx, NewProduct(name, description, price, category))
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (Product, bool, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) GetAllProducts(ctx context.Context) ([]Product, error) {
	return s.store.List(ctx)
}

// UpdateProduct applies patch to the stored product. ok is false when no
// product has the given id.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, patch ProductPatch) (Product, bool, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return Product{}, false, errNegativePrice
	}

	p, ok, err := s.store.Get(ctx, id)
	if err != nil || !ok {
		return Product{}, ok, err
	}

	p.Apply(patch)
	return s.store.Update(ctx, id, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Delete(ctx, id)
}
