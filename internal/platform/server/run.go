package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"
)

// ServeHTTP runs srv until ctx is cancelled, then shuts it down within shutdownTimeout.
// It returns once the server has stopped.
func ServeHTTP(ctx context.Context, logger *slog.Logger, name string, srv *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("server", name), slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("%s server failed: %w", name, err)
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", slog.String("server", name))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", name, err)
	}
	return <-serveErr
}

// ServeGRPC serves srv on lis until ctx is cancelled. onStop, when set, runs before the
// graceful stop; a stop that outlasts shutdownTimeout is forced.
func ServeGRPC(ctx context.Context, logger *slog.Logger, srv *grpc.Server, lis net.Listener, shutdownTimeout time.Duration, onStop func()) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", slog.String("addr", lis.Addr().String()))
		if err := srv.Serve(lis); err != nil {
			serveErr <- fmt.Errorf("grpc server failed: %w", err)
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down gRPC server...")
	if onStop != nil {
		onStop()
	}
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
		logger.Info("gRPC server stopped gracefully.")
		return nil
	case <-time.After(shutdownTimeout):
		logger.Warn("gRPC server graceful stop timed out. Forcing stop.")
		srv.Stop()
		return errors.New("grpc server graceful stop timed out")
	}
}
