package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	accountapp "github.com/eshop/backend/internal/application/account"
	catalogapp "github.com/eshop/backend/internal/application/catalog"
	orderapp "github.com/eshop/backend/internal/application/order"
	"github.com/eshop/backend/internal/application/seed"
	"github.com/eshop/backend/internal/infrastructure/config"
	"github.com/eshop/backend/internal/infrastructure/logger"
	"github.com/eshop/backend/internal/infrastructure/memory"
	"github.com/eshop/backend/internal/interfaces/console"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting eshop",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Wire in-memory repositories
	accountRepo := memory.NewAccountRepository()
	productRepo := memory.NewProductRepository()
	categoryRepo := memory.NewCategoryRepository()
	orderRepo := memory.NewOrderRepository()

	// Wire application services
	accounts := accountapp.NewService(accountRepo, log)
	products := catalogapp.NewProductService(productRepo, categoryRepo, log)
	categories := catalogapp.NewCategoryService(categoryRepo, productRepo, log)
	carts := orderapp.NewCartService(orderRepo, productRepo, log)

	ctx := context.Background()

	// Load sample data unless disabled
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(accounts, products, categories, log)
		if err := seeder.Run(ctx, cfg.Seed.AdminEmail); err != nil {
			log.Fatal("Failed to seed sample data", zap.Error(err))
		}
	}

	ui := console.New(accounts, products, categories, carts, os.Stdin, os.Stdout, log)
	if err := ui.Run(ctx); err != nil {
		log.Fatal("Console session failed", zap.Error(err))
	}

	log.Info("Shutdown complete")
}
