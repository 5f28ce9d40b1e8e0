package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/handler"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the servers for every handler enabled in handlers. The
// workers run alongside them and stop when they shut down.
func NewServer(
	handlers *handler.Handlers,
	workers *workers.Workers,
	cfg config.OCServe,
	deployment orchestrators.Deployment,
	logger *logger.Logger,
) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers:         workers,
		shutdownTimeout: deployment.GracefulShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = orchestrators.DefaultGracefulShutdownTimeout
	}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers != nil && handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, or until a server
// fails, then shuts everything down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) servers() []Server {
	var list []Server
	if s.httpServer != nil {
		list = append(list, s.httpServer)
	}
	if s.gRPCServer != nil {
		list = append(list, s.gRPCServer)
	}
	return list
}

func (s *server) run(ctx context.Context) error {
	list := s.servers()
	if len(list) == 0 {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErrs := make(chan error, len(list))
	var wg sync.WaitGroup
	for _, srv := range list {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.RunServer(); err != nil {
				serveErrs <- err
			}
		}()
	}

	workerErrs := make(chan error, 1)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers == nil {
			return
		}
		if err := s.workers.Run(ctx); err != nil {
			workerErrs <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
	case runErr = <-serveErrs:
		s.logger.Error().Err(runErr).Msg("server failed")
	case runErr = <-workerErrs:
		s.logger.Error().Err(runErr).Msg("worker failed")
	}
	cancel()

	shutdownCtx, done := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer done()

	shutdownErr := s.Shutdown(shutdownCtx)
	wg.Wait()
	<-workersDone

	if shutdownErr != nil {
		s.logger.Error().Err(shutdownErr).Msg("server Shutdown with errors")
		return errors.Join(runErr, shutdownErr)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// Shutdown stops every server, HTTP first.
func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers() {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
