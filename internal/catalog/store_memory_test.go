package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_SeedsTenFixtures(t *testing.T) {
	s := NewMemStore()

	all, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 10)
	assert.Equal(t, 10, s.Len())

	seen := map[uuid.UUID]bool{}
	categories := map[string]bool{}
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate fixture id %s", p.ID)
		seen[p.ID] = true
		categories[p.Category] = true
		assert.Positive(t, p.Price)
	}
	assert.Len(t, categories, 2)
	assert.Equal(t, "Wireless Mouse", all[0].Name)
	assert.Equal(t, "Cable Organizer", all[9].Name)
}

func TestMemStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyMemStore()

	p := NewProduct("Pen", "Blue ink pen", 1.5, "Office")
	created, err := s.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p, created)

	got, ok, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)

	changed := p
	changed.Price = 2
	updated, ok, err := s.Update(ctx, p.ID, changed)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2.0, updated.Price)

	got, _, _ = s.Get(ctx, p.ID)
	assert.Equal(t, 2.0, got.Price)

	deleted, err := s.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, ok, err = s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_MissingIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	id := uuid.New()

	_, ok, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Update(ctx, id, NewProduct("n", "d", 1, "c", id))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10, s.Len(), "update must not insert")
}

func TestMemStore_CreateCollisionOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyMemStore()
	id := uuid.New()

	_, _ = s.Create(ctx, NewProduct("first", "d", 1, "c", id))
	_, _ = s.Create(ctx, NewProduct("second", "d", 2, "c", id))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "second", all[0].Name)
}

func TestMemStore_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyMemStore()

	a := NewProduct("a", "d", 1, "c")
	b := NewProduct("b", "d", 1, "c")
	c := NewProduct("c", "d", 1, "c")
	for _, p := range []Product{a, b, c} {
		_, _ = s.Create(ctx, p)
	}

	_, _ = s.Delete(ctx, b.ID)
	_, _ = s.Create(ctx, b)
	a.Name = "a2"
	_, _, _ = s.Update(ctx, a.ID, a)

	all, err := s.List(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, p := range all {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a2", "c", "b"}, names)
}

func TestMemStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	all, _ := s.List(ctx)
	all[0].Name = "mutated"

	again, _ := s.List(ctx)
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestMemStore_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyMemStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, _ := s.Create(ctx, NewProduct("n", "d", 1, "c"))
			_, _, _ = s.Get(ctx, p.ID)
			_, _ = s.List(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
