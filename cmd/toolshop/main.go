// Package main runs the tool shop HTTP and gRPC servers.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "net/http/pprof"

	"github.com/abgdnv/toolshop/internal/config"
	"github.com/abgdnv/toolshop/internal/platform/bootstrap"
	"github.com/abgdnv/toolshop/internal/platform/server"
	"github.com/abgdnv/toolshop/internal/platform/telemetry"
	"github.com/abgdnv/toolshop/internal/shop/app"
	"github.com/abgdnv/toolshop/internal/shop/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const serviceName = "toolshop"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run loads the configuration and catalog, then starts the HTTP, gRPC and pprof servers.
func run(ctx context.Context) error {
	cfg, cfgErr := config.Load[*config.Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	telemetry.SetupPropagation()

	var dbPool *pgxpool.Pool
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		if cfg.Database.Migrate {
			if err := migrations.Up(cfg.Database.URL); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			logger.Info("Database migrations applied")
		}
		var err error
		dbPool, err = bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
		if err != nil {
			return fmt.Errorf("failed to create database connection pool: %w", err)
		}
		defer dbPool.Close()
		logger.Info("Successfully connected to the database!")
	}

	catalogStore, err := app.NewCatalogStore(cfg.Catalog, dbPool)
	if err != nil {
		return err
	}
	deps, err := app.SetupDependencies(ctx, catalogStore, cfg.Restock, logger)
	if err != nil {
		return err
	}

	httpServer, pprofServer, grpcServer := setupServers(deps, cfg)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.ServeHTTP(gCtx, logger, "http", httpServer, cfg.Shutdown.Timeout)
	})

	grpcAddr := ":" + cfg.GRPC.Port
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}
	g.Go(func() error {
		return server.ServeGRPC(gCtx, logger, grpcServer, lis, cfg.Shutdown.Timeout, deps.Health.Shutdown)
	})

	if cfg.PProf.Enabled {
		g.Go(func() error {
			return server.ServeHTTP(gCtx, logger, "pprof", pprofServer, cfg.Shutdown.Timeout)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}

// setupServers creates the HTTP, pprof and gRPC servers from the wired dependencies.
func setupServers(deps *app.Dependencies, cfg *config.Config) (*http.Server, *http.Server, *grpc.Server) {
	httpServer := app.SetupHttpServer(deps, cfg)
	grpcServer := app.SetupGrpcServer(deps, cfg.GRPC.ReflectionEnabled)
	pprofServer := &http.Server{
		Addr: cfg.PProf.Addr,
	}
	return httpServer, pprofServer, grpcServer
}
