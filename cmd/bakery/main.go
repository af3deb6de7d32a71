package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bakery-management/config"
	_ "bakery-management/docs" // Swagger docs
	"bakery-management/internal/action"
	"bakery-management/internal/catalog/repository/memory"
	"bakery-management/internal/catalog/usecase"
	"bakery-management/internal/httpserver"
	"bakery-management/internal/terminal"
	"bakery-management/internal/view"
	"bakery-management/pkg/log"
	"bakery-management/pkg/pricing"
)

// @title       Sweet Delights Bakery API
// @description Automation surface for the bakery management window.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s...", cfg.Bakery.Title)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalog
	repo := memory.NewSeeded(logger)
	catalogUC := usecase.New(repo, logger)

	policy, err := pricing.ByName(cfg.Bakery.PricingPolicy)
	if err != nil {
		logger.Errorf(ctx, "Pricing policy %q: %v", cfg.Bakery.PricingPolicy, err)
		os.Exit(1)
	}

	// 4. Window
	window := terminal.New(logger, os.Stdin, os.Stdout)
	v := view.New(logger, catalogUC, window, view.Options{
		Title:          cfg.Bakery.Title,
		Heading:        cfg.Bakery.Heading,
		MaxPurchaseQty: cfg.Bakery.MaxPurchaseQty,
	})
	if err := v.LoadItems(ctx); err != nil {
		logger.Errorf(ctx, "Failed to load items: %v", err)
		os.Exit(1)
	}

	handler := action.New(logger, catalogUC, v, policy)
	window.Attach(v, handler)

	// 5. Automation API (optional)
	if cfg.HTTPServer.Enabled {
		srv, err := httpserver.New(logger, httpserver.Config{
			Logger:          logger,
			Port:            cfg.HTTPServer.Port,
			Mode:            cfg.HTTPServer.Mode,
			Environment:     cfg.Environment.Name,
			RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
			CatalogUseCase:  catalogUC,
			ActionHandler:   handler,
			View:            v,
			OnExit:          func() { os.Exit(0) },
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
			os.Exit(1)
		}

		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Errorf(ctx, "HTTP server stopped: %v", err)
			}
		}()
	}

	// 6. Run. Console reads block, so a signal ends the process without
	// waiting for the window loop to notice.
	done := make(chan error, 1)
	go func() { done <- window.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, action.ErrExit) {
			logger.Errorf(ctx, "Window closed: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info(ctx, "Interrupted")
	}

	logger.Info(ctx, "Goodbye")
}
