package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ProductCatalog/internal/catalog"
	"ProductCatalog/internal/config"
	"ProductCatalog/pkg/kit"
)

const writeLimitWindow = time.Minute

func main() {
	service := "catalog"

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// One store for the process lifetime; handlers build a Service per request.
	mem := catalog.NewMemStore()
	log.Info("catalog seeded", zap.Int("products", mem.Len()))

	s := &catalog.Server{
		Store: catalog.NewInstrumentedStore(mem, reg),
		Log:   log,
	}
	if cfg.WriteRateLimit > 0 {
		s.WriteLimit = kit.NewIPRateLimiter(cfg.WriteRateLimit, writeLimitWindow).Middleware
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
	})

	err = kit.RunHTTPServer(context.Background(), cfg.HTTP.Addr(), h, log, kit.ServerOptions{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	})
	if err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
