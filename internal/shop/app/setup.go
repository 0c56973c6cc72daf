// Package app contains the application setup for the tool shop.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/toolshop/internal/config"
	"github.com/abgdnv/toolshop/internal/platform/server"
	"github.com/abgdnv/toolshop/internal/platform/telemetry"
	"github.com/abgdnv/toolshop/internal/shop/handler"
	"github.com/abgdnv/toolshop/internal/shop/inventory"
	"github.com/abgdnv/toolshop/internal/shop/model"
	"github.com/abgdnv/toolshop/internal/shop/service"
	"github.com/abgdnv/toolshop/internal/shop/store"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// HealthServiceName is the service name reported by the gRPC health server.
const HealthServiceName = "toolshop"

type Dependencies struct {
	ShopService service.ShopService
	Health      *health.Server
	Logger      *slog.Logger
}

// NewCatalogStore selects the catalog source. dbPool is only used for the postgres source.
func NewCatalogStore(cfg config.CatalogConfig, dbPool *pgxpool.Pool) (store.CatalogStore, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		return store.NewFileStore(cfg.File), nil
	case config.CatalogSourcePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("catalog source %q requires a database pool", cfg.Source)
		}
		return store.NewPgStore(dbPool), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// SetupDependencies loads the catalog and builds the shop manager on top of it.
func SetupDependencies(ctx context.Context, catalogStore store.CatalogStore, restock config.RestockConfig, logger *slog.Logger) (*Dependencies, error) {
	catalog, err := catalogStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		slog.Int("items", len(catalog.Items)),
		slog.Int("suppliers", len(catalog.Suppliers)),
		slog.Int("customers", len(catalog.Customers)),
	)

	inv := inventory.New(catalog.Items, inventory.WithRestockPolicy(inventory.RestockPolicy{
		Threshold: restock.Threshold,
		Target:    restock.Target,
	}))
	manager := service.NewShopManager(inv,
		model.NewSupplierList(catalog.Suppliers...),
		model.NewCustomerList(catalog.Customers...),
	)

	return &Dependencies{
		ShopService: manager,
		Health:      health.NewServer(),
		Logger:      logger,
	}, nil
}

// SetupHttpHandler builds the router with middleware and the shop routes.
// Used by E2E tests to serve the application from an httptest.Server.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return telemetry.InstrumentHandler(mux, HealthServiceName)
}

// wireRoutes sets up the HTTP routes for the shop.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	shopHandler := handler.NewHandler(deps.ShopService, deps.Logger)
	shopHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}

// SetupGrpcServer initializes the gRPC server serving the health protocol.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, server.HealthRegistration(deps.Health, "", HealthServiceName))
}
