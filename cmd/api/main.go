package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/opheliasgarden/nursery-backend/api/routes"
	"github.com/opheliasgarden/nursery-backend/internal/cart"
	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	"github.com/opheliasgarden/nursery-backend/internal/email"
	"github.com/opheliasgarden/nursery-backend/internal/preorder"
	"github.com/opheliasgarden/nursery-backend/pkg/config"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
	"github.com/opheliasgarden/nursery-backend/pkg/metrics"
	"github.com/opheliasgarden/nursery-backend/pkg/redis"
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

	cat, err := catalog.Load(cfg.Catalog.ContentDir)
	if err != nil {
		logg.Error(context.Background(), "failed to load variety catalog", err)
		os.Exit(1)
	}
	ctx := logg.WithField(context.Background(), "varieties", cat.Len())
	logg.Info(ctx, "catalog loaded")

	var cartStore cart.Store
	if cfg.Redis.Configured() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		cartStore, err = cart.NewRedisStore(redisClient, cfg.Cart.TTL, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create cart store", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, carts are in-memory only")
		cartStore = cart.NewMemoryStore()
	}

	cartService, err := cart.NewService(cartStore, cat)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	notifier, err := email.NewProvider(cfg.Email, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create email provider", err)
		os.Exit(1)
	}
	if notifier == nil {
		logg.Warn(context.Background(), "email not configured, pre-orders will be logged only")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	preorderService, err := preorder.NewService(preorder.ServiceParams{
		Notifier: notifier,
		Logger:   logg,
		Metrics:  metrics.NewPreOrderMetrics(registry),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create preorder service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, cat, cartStore, cartService, preorderService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
