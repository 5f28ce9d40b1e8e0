package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/handler"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/mock"
	"github.com/MKhiriev/oc-serve/internal/ocserve"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/internal/workers"
)

type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error { return f(ctx) }

func newTestHandlers(t *testing.T, cfg config.OCServe) *handler.Handlers {
	t.Helper()

	orch := mock.NewMockOrchestrator(gomock.NewController(t))
	reg := metrics.New()
	orch.EXPECT().Metrics().Return(reg).AnyTimes()

	app := &ocserve.App{Orchestrator: orch, Deployment: orchestrators.DefaultDeployment(), Metrics: reg}
	h, err := handler.NewHandlers(app, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func newTestServer(t *testing.T, cfg config.OCServe, ws *workers.Workers) *server {
	t.Helper()

	dep := orchestrators.DefaultDeployment()
	dep.GracefulShutdownTimeout = time.Second
	srv, err := NewServer(newTestHandlers(t, cfg), ws, cfg, dep, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func runAsync(ctx context.Context, s *server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.OCServe
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "http only", cfg: config.OCServe{HTTPAddress: "127.0.0.1:0"}, wantHTTP: true},
		{name: "grpc only", cfg: config.OCServe{GRPCAddress: "127.0.0.1:0"}, wantGRPC: true},
		{name: "both", cfg: config.OCServe{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, wantHTTP: true, wantGRPC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.cfg, nil)

			assert.Equal(t, tt.wantHTTP, s.httpServer != nil)
			assert.Equal(t, tt.wantGRPC, s.gRPCServer != nil)
			assert.Equal(t, time.Second, s.shutdownTimeout)
		})
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.OCServe{HTTPAddress: ":0"}, orchestrators.DefaultDeployment(), logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	cfg := config.OCServe{HTTPAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), nil, cfg, orchestrators.Deployment{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, orchestrators.DefaultGracefulShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestRun_StopsOnCancel(t *testing.T) {
	workerStopped := make(chan struct{})
	ws := workers.NewWorkers(workerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		close(workerStopped)
		return nil
	}))
	s := newTestServer(t, config.OCServe{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, ws)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, s)
	time.Sleep(50 * time.Millisecond)
	cancel()

	assert.NoError(t, wait(t, done))
	select {
	case <-workerStopped:
	default:
		t.Fatal("worker was not stopped")
	}
}

func TestRun_FinishedWorkersKeepServing(t *testing.T) {
	ws := workers.NewWorkers(workerFunc(func(context.Context) error { return nil }))
	s := newTestServer(t, config.OCServe{HTTPAddress: "127.0.0.1:0"}, ws)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, s)

	select {
	case err := <-done:
		t.Fatalf("server stopped early: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, wait(t, done))
}

func TestRun_WorkerFailureStopsServers(t *testing.T) {
	boom := errors.New("probe failed")
	ws := workers.NewWorkers(workerFunc(func(context.Context) error { return boom }))
	s := newTestServer(t, config.OCServe{HTTPAddress: "127.0.0.1:0"}, ws)

	err := wait(t, runAsync(context.Background(), s))

	assert.ErrorIs(t, err, boom)
}

func TestRun_ListenFailure(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.OCServe
	}{
		{name: "http", cfg: config.OCServe{HTTPAddress: "not-an-address"}},
		{name: "grpc", cfg: config.OCServe{GRPCAddress: "not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.cfg, nil)

			err := wait(t, runAsync(context.Background(), s))

			assert.Error(t, err)
		})
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
