package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var _ Store = (*MemStore)(nil)

// MemStore keeps products in process memory, listing them in insertion order.
type MemStore struct {
	mu    sync.RWMutex
	m     map[uuid.UUID]Product
	order []uuid.UUID
}

// NewMemStore returns a store seeded with the demo fixtures.
func NewMemStore() *MemStore {
	s := NewEmptyMemStore()
	for _, p := range fixtures() {
		s.put(p)
	}
	return s
}

// NewEmptyMemStore returns a store with no products.
func NewEmptyMemStore() *MemStore {
	return &MemStore{m: map[uuid.UUID]Product{}}
}

func fixtures() []Product {
	return []Product{
		NewProduct("Wireless Mouse", "Ergonomic wireless mouse with precision tracking", 29.99, "Electronics"),
		NewProduct("Mechanical Keyboard", "RGB backlit mechanical keyboard with blue switches", 89.99, "Electronics"),
		NewProduct("USB-C Hub", "7-in-1 USB-C hub with HDMI and ethernet", 45.99, "Electronics"),
		NewProduct("Laptop Stand", "Adjustable aluminum laptop stand", 39.99, "Accessories"),
		NewProduct("Webcam HD", "1080p HD webcam with built-in microphone", 59.99, "Electronics"),
		NewProduct("Desk Lamp", "LED desk lamp with adjustable brightness", 34.99, "Accessories"),
		NewProduct(`Monitor 27"`, "27-inch 4K UHD monitor with HDR support", 399.99, "Electronics"),
		NewProduct("Headphones", "Noise-cancelling over-ear headphones", 149.99, "Electronics"),
		NewProduct("Phone Stand", "Adjustable phone stand for desk", 19.99, "Accessories"),
		NewProduct("Cable Organizer", "Cable management box for desk organization", 24.99, "Accessories"),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Create stores p under its own ID. An existing product with the same ID is
// replaced in place.
func (s *MemStore) Create(ctx context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(p)
	return p, nil
}

func (s *MemStore) Get(ctx context.Context, id uuid.UUID) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out, nil
}

func (s *MemStore) Update(ctx context.Context, id uuid.UUID, p Product) (Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return Product{}, false, nil
	}
	s.m[id] = p
	return p, true, nil
}

func (s *MemStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return false, nil
	}
	delete(s.m, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return true, nil
}

// put must be called with mu held for writing (or before the store is shared).
func (s *MemStore) put(p Product) {
	if _, exists := s.m[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.m[p.ID] = p
}
