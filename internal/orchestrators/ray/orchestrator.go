// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ray implements the "ray" orchestrator. It fronts one inference
// server chosen by RAY_BACKEND_SERVER_TYPE and carries the Ray Serve
// deployment options used to size and expose the HTTP front end.
package ray

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/internal/registry"
	"github.com/MKhiriev/oc-serve/internal/servers"
	"github.com/MKhiriev/oc-serve/models"
)

// Name is the registry name of the orchestrator.
const Name = "ray"

// MsgAPIHealthy is the body of a successful API health check.
const MsgAPIHealthy = "API is Healthy!"

var _ orchestrators.Orchestrator = (*Orchestrator)(nil)

// Orchestrator forwards every request to its server.
type Orchestrator struct {
	cfg        *Config
	server     servers.Server
	deployment orchestrators.Deployment
	logger     *logger.Logger
}

// New creates an orchestrator fronting server.
func New(cfg *Config, server servers.Server, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		cfg:        cfg,
		server:     server,
		deployment: cfg.Deployment.Descriptor(),
		logger:     log,
	}
}

// Register adds the ray configuration and factory to the orchestrator
// registries. The factory resolves the backend server through srv using the
// same environment snapshot.
func Register(configs *orchestrators.ConfigRegistry, impls *orchestrators.Registry, srv *servers.Registry, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	if err := configs.Register(Name, func() orchestrators.Config { return NewConfig() }); err != nil {
		return err
	}

	build := func(cfg *Config, env envbind.Snapshot) (orchestrators.Orchestrator, error) {
		backend := cfg.Backend.BackendServerType
		server, err := srv.Get(backend, env)
		if err != nil {
			return nil, fmt.Errorf("resolve backend server: %w", err)
		}

		o := New(cfg, server, &logger.Logger{Logger: log.With().Str("orchestrator", Name).Logger()})
		o.logger.Info().
			Str("backend_server_type", backend).
			Str("route_prefix", o.deployment.RoutePrefix).
			Int("max_ongoing_requests", o.deployment.MaxOngoingRequests).
			Int("max_queued_requests", o.deployment.MaxQueuedRequests).
			Msg("ray orchestrator created")
		return o, nil
	}

	return registry.RegisterTyped(impls, Name, build)
}

// Config returns the bound configuration.
func (o *Orchestrator) Config() *Config {
	return o.cfg
}

// Server returns the fronted server.
func (o *Orchestrator) Server() servers.Server {
	return o.server
}

func (o *Orchestrator) CheckAPIHealth(context.Context) (models.Response, error) {
	return models.TextResponse(MsgAPIHealthy), nil
}

func (o *Orchestrator) CheckModelHealth(ctx context.Context) (models.Response, error) {
	return o.server.CheckModelHealth(ctx)
}

func (o *Orchestrator) ModelInfo(ctx context.Context) (models.Response, error) {
	return o.server.ModelInfo(ctx)
}

func (o *Orchestrator) Instruct(ctx context.Context, req models.ChatCompletionRequest) (models.Response, error) {
	return o.server.Instruct(ctx, req)
}

func (o *Orchestrator) Complete(ctx context.Context, req models.CompletionRequest) (models.Response, error) {
	return o.server.Complete(ctx, req)
}

func (o *Orchestrator) Transcribe(ctx context.Context, req models.TranscriptionRequest) (models.Response, error) {
	return o.server.Transcribe(ctx, req)
}

func (o *Orchestrator) Tokenize(ctx context.Context, req models.TokenizeRequest) (models.Response, error) {
	return o.server.Tokenize(ctx, req)
}

func (o *Orchestrator) Detokenize(ctx context.Context, req models.DetokenizeRequest) (models.Response, error) {
	return o.server.Detokenize(ctx, req)
}

func (o *Orchestrator) Score(ctx context.Context, req models.ScoreRequest) (models.Response, error) {
	return o.server.Score(ctx, req)
}

func (o *Orchestrator) Pooling(ctx context.Context, req models.PoolingRequest) (models.Response, error) {
	return o.server.Pooling(ctx, req)
}

func (o *Orchestrator) Metrics() prometheus.Gatherer {
	return o.server.Metrics()
}

// Deployment returns the descriptor derived from the deployment settings.
func (o *Orchestrator) Deployment() orchestrators.Deployment {
	return o.deployment
}

// Close closes the server.
func (o *Orchestrator) Close() error {
	return o.server.Close()
}
