package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedStore_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	s := NewInstrumentedStore(NewEmptyMemStore(), reg)

	p, err := s.Create(ctx, NewProduct("n", "d", 1, "c"))
	require.NoError(t, err)

	_, ok, _ := s.Get(ctx, p.ID)
	require.True(t, ok)
	_, ok, _ = s.Get(ctx, uuid.New())
	require.False(t, ok)

	deleted, _ := s.Delete(ctx, p.ID)
	require.True(t, deleted)
	deleted, _ = s.Delete(ctx, p.ID)
	require.False(t, deleted)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.ops.WithLabelValues("create", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ops.WithLabelValues("get", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ops.WithLabelValues("get", resultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ops.WithLabelValues("delete", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ops.WithLabelValues("delete", resultNotFound)))
	assert.Equal(t, 3, testutil.CollectAndCount(s.latency))
}

func TestInstrumentedStore_CountsErrors(t *testing.T) {
	s := NewInstrumentedStore(failingStore{}, prometheus.NewRegistry())

	_, err := s.List(context.Background())
	require.ErrorIs(t, err, errBackend)
	require.ErrorIs(t, s.Ping(context.Background()), errBackend)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.ops.WithLabelValues("list", resultError)))
}
