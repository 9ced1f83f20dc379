package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// InstrumentedStore wraps a Store and records per-operation counts and
// latencies.
type InstrumentedStore struct {
	next    Store
	ops     *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

var _ Store = (*InstrumentedStore)(nil)

func NewInstrumentedStore(next Store, reg prometheus.Registerer) *InstrumentedStore {
	s := &InstrumentedStore{
		next: next,
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_store_operations_total",
				Help: "Product store operations by outcome",
			},
			[]string{"op", "result"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_store_operation_duration_seconds",
				Help:    "Product store operation latency",
				Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(s.ops, s.latency)
	return s
}

func (s *InstrumentedStore) observe(op string, start time.Time, found bool, err error) {
	s.latency.WithLabelValues(op).Observe(time.Since(start).Seconds())

	result := resultOK
	switch {
	case err != nil:
		result = resultError
	case !found:
		result = resultNotFound
	}
	s.ops.WithLabelValues(op, result).Inc()
}

func (s *InstrumentedStore) Create(ctx context.Context, p Product) (Product, error) {
	start := time.Now()
	out, err := s.next.Create(ctx, p)
	s.observe("create", start, true, err)
	return out, err
}

func (s *InstrumentedStore) Get(ctx context.Context, id uuid.UUID) (Product, bool, error) {
	start := time.Now()
	p, ok, err := s.next.Get(ctx, id)
	s.observe("get", start, ok, err)
	return p, ok, err
}

func (s *InstrumentedStore) List(ctx context.Context) ([]Product, error) {
	start := time.Now()
	out, err := s.next.List(ctx)
	s.observe("list", start, true, err)
	return out, err
}

func (s *InstrumentedStore) Update(ctx context.Context, id uuid.UUID, p Product) (Product, bool, error) {
	start := time.Now()
	out, ok, err := s.next.Update(ctx, id, p)
	s.observe("update", start, ok, err)
	return out, ok, err
}

func (s *InstrumentedStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	start := time.Now()
	ok, err := s.next.Delete(ctx, id)
	s.observe("delete", start, ok, err)
	return ok, err
}

func (s *InstrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}
