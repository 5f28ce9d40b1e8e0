// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ocserve is the bootstrap of the gateway. It reads the orchestrator
// selector, resolves the orchestrator (and through it the inference server)
// from the plugin catalog, and hands the result to the transport layer.
package ocserve

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/internal/plugins"
)

// ErrNoCatalog is returned when New is called without a plugin catalog.
var ErrNoCatalog = errors.New("no plugin catalog")

// App is a fully resolved gateway: the orchestrator, its deployment
// descriptor and the metrics registry every plugin reports to.
type App struct {
	Orchestrator orchestrators.Orchestrator
	Deployment   orchestrators.Deployment
	Metrics      *metrics.Registry

	orchestratorType string
}

// New resolves cfg.OrchestratorType through catalog using env. Any failure
// is fatal for the process; the error names the stage that failed.
func New(cfg config.OCServe, env envbind.Snapshot, catalog *plugins.Catalog, log *logger.Logger) (*App, error) {
	if catalog == nil {
		return nil, ErrNoCatalog
	}
	if log == nil {
		log = logger.Nop()
	}

	log.Info().
		Str("orchestrator_type", cfg.OrchestratorType).
		Int("env_vars", env.Len()).
		Msg("resolving orchestrator")

	orchestrator, err := catalog.Orchestrators.Get(cfg.OrchestratorType, env)
	if err != nil {
		return nil, fmt.Errorf("resolve orchestrator: %w", err)
	}

	app := &App{
		Orchestrator:     orchestrator,
		Deployment:       orchestrator.Deployment(),
		Metrics:          catalog.Metrics,
		orchestratorType: cfg.OrchestratorType,
	}

	log.Info().
		Str("orchestrator_type", cfg.OrchestratorType).
		Str("route_prefix", app.Deployment.RoutePrefix).
		Any("deployment", app.Deployment.Settings).
		Msg("orchestrator ready")
	return app, nil
}

// OrchestratorType is the name the orchestrator was resolved by.
func (a *App) OrchestratorType() string {
	return a.orchestratorType
}

// Close releases the orchestrator and the server behind it.
func (a *App) Close() error {
	return a.Orchestrator.Close()
}
