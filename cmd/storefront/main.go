// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/provider"
	"github.com/your-org/storefront/internal/provider/httpapi"
	"github.com/your-org/storefront/internal/provider/mock"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Build the cart persistence backend
	persistence, cleanup, err := buildPersistence(cfg, appLog)
	if err != nil {
		appLog.Fatalf("Failed to initialize cart backend %q: %v", cfg.Cart.Backend, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	store := cart.NewStore(persistence, appLog)

	// Select the data provider implementation
	providers := buildProviders(cfg, appLog)

	appLog.WithFields(logrus.Fields{
		"provider":     cfg.Provider.Mode,
		"cart_backend": cfg.Cart.Backend,
	}).Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, providers, store, appLog)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLog.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("✅ Server shutdown completed")
}

// buildPersistence wires the cart backend selected by configuration.
// The returned cleanup closes any backing connection and may be nil.
func buildPersistence(cfg *config.Config, appLog *logrus.Logger) (cart.Persistence, func(), error) {
	switch cfg.Cart.Backend {
	case config.CartBackendMemory:
		return cart.NewMemoryPersistence(), nil, nil

	case config.CartBackendFile:
		p, err := cart.NewFilePersistence(cfg.Cart.FilePath, cfg.Cart.Namespace)
		if err != nil {
			return nil, nil, err
		}
		return p, nil, nil

	case config.CartBackendRedis:
		client, err := redis.NewConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Health(); err != nil {
			client.Close()
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				appLog.Warnf("Failed to close Redis connection: %v", err)
			}
		}
		return cart.NewRedisPersistence(client.GetClient(), cfg.Cart.Namespace, cfg.Cart.SessionTTL), cleanup, nil

	case config.CartBackendPostgres:
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Health(); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				appLog.Warnf("Failed to close database connection: %v", err)
			}
		}
		return cart.NewGormPersistence(db.GetDB(), cfg.Cart.Namespace), cleanup, nil
	}

	// Validate() already rejected unknown values; this is unreachable.
	return cart.NewMemoryPersistence(), nil, nil
}

// buildProviders returns fixture-backed providers in mock mode and
// network-backed providers otherwise.
func buildProviders(cfg *config.Config, appLog *logrus.Logger) provider.Set {
	if cfg.UseMockProvider() {
		return mock.New(cfg.Provider.MockDelay)
	}
	return httpapi.NewSet(httpapi.NewClient(cfg.Provider.APIBaseURL, nil, appLog))
}
