package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func Test_ServeHTTP(t *testing.T) {
	t.Run("stops on cancel", func(t *testing.T) {
		// given
		ctx, cancel := context.WithCancel(context.Background())
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
		done := make(chan error, 1)

		// when
		go func() { done <- ServeHTTP(ctx, discard, "http", srv, time.Second) }()
		cancel()

		// then
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("reports listen errors", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}

		err := ServeHTTP(context.Background(), discard, "http", srv, time.Second)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server failed")
	})
}

func Test_ServeGRPC_StopsOnCancel(t *testing.T) {
	// given
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hs := health.NewServer()
	lis := bufconn.Listen(1024 * 1024)
	srv := NewGRPCServer(discard, false, HealthRegistration(hs, "shop"))
	stopped := false
	done := make(chan error, 1)
	go func() {
		done <- ServeGRPC(ctx, discard, srv, lis, time.Second, func() { stopped = true })
	}()

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()
	res, err := healthpb.NewHealthClient(dial(t, lis)).Check(checkCtx, &healthpb.HealthCheckRequest{Service: "shop"})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)

	// when
	cancel()

	// then
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
	assert.True(t, stopped)
}
