package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/amirasaad/storefront/cmd/server/swagger"
	"github.com/amirasaad/storefront/infra/initializer"
	"github.com/amirasaad/storefront/pkg/app"
	"github.com/amirasaad/storefront/pkg/config"
	"github.com/amirasaad/storefront/webapi"
	log "github.com/charmbracelet/log"
)

// @title Storefront API
// @version 1.0.0
// @description Checkout and live price lookup for the storefront.
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	application := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(application)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"payment_provider", cfg.PaymentProvider,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	closeDeps(deps, logger)
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type closer interface {
	Close() error
}

func closeDeps(deps *app.Deps, logger *slog.Logger) {
	if c, ok := deps.PriceCache.(closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close price cache", "error", err)
		}
	}
}
