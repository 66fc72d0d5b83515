package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopstreamhq/shopstream-backend/api/routes"
	"github.com/shopstreamhq/shopstream-backend/internal/auth"
	"github.com/shopstreamhq/shopstream-backend/internal/cart"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
	"github.com/shopstreamhq/shopstream-backend/internal/checkout"
	"github.com/shopstreamhq/shopstream-backend/pkg/config"
	"github.com/shopstreamhq/shopstream-backend/pkg/kvstore"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
	"github.com/shopstreamhq/shopstream-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	kv, err := kvstore.New(context.Background(), cfg.Redis, cfg.Session.RecordTTL, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap key-value store", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logg.Error(context.Background(), "error closing key-value store", err)
		}
	}()

	catalogClient, err := catalog.NewClient(context.Background(), cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalogClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService := cart.NewService()

	authService, err := auth.NewService(auth.ServiceParams{
		Store:  kv,
		Config: cfg.Auth,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Catalog: catalogService,
		Cart:    cartService,
		Store:   kv,
		Payment: cfg.Payment,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			KV:              kv,
			CatalogPinger:   catalogClient,
			CatalogService:  catalogService,
			CartService:     cartService,
			AuthService:     authService,
			CheckoutService: checkoutService,
			HTTPMetrics:     httpMetrics,
			MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
