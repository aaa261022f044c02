package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/FreshMeal_Go/internal/bootstrap"
	"github.com/osse101/FreshMeal_Go/internal/config"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
	"github.com/osse101/FreshMeal_Go/internal/recipe"
	"github.com/osse101/FreshMeal_Go/internal/server"
	"github.com/osse101/FreshMeal_Go/internal/shopping"
)

// shutdownTimeout bounds the drain of in-flight requests
const shutdownTimeout = 10 * time.Second

//go:generate swag init -g main.go -d .,../../internal/handler,../../internal/domain -o ../../docs

// @title FreshMeal API
// @version 1.0
// @description Recipe catalog, weekly meal calendar and shopping list.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg, os.Stdout)

	if err := run(cfg); err != nil {
		slog.Error("FreshMeal exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg, bootstrap.StoreOptions{
		Migrate:  true,
		SeedDemo: cfg.SeedDemoData,
	})
	if err != nil {
		return err
	}

	recipes := recipe.NewService(store.Recipes(), store.MealPlans(), recipe.CacheConfig{
		Size: cfg.RecipeCacheSize,
		TTL:  cfg.RecipeCacheTTL,
	})
	list := shopping.NewService(store.Shopping())
	plans := mealplan.NewService(store.MealPlans(), recipes, list, mealplan.Config{
		Policy:        cfg.PastDatePolicy,
		Location:      cfg.Location,
		DefaultUserID: cfg.DefaultUserID,
	})

	srv := server.NewServer(store, server.Services{
		Recipes:  recipes,
		Plans:    plans,
		Shopping: list,
	}, server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server: srv,
			Store:  store,
		})
		return nil
	})
	return g.Wait()
}
