// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package plugins registers every known server and orchestrator into a fresh
// set of registries.
//
// Registration runs in a fixed order (servers first, then orchestrators) so
// the resulting registries, and any error, are the same on every start.
package plugins

import (
	"fmt"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/internal/orchestrators/ray"
	"github.com/MKhiriev/oc-serve/internal/registry"
	"github.com/MKhiriev/oc-serve/internal/servers"
	"github.com/MKhiriev/oc-serve/internal/servers/vllm"
)

// Catalog holds the populated plugin registries.
type Catalog struct {
	Metrics *metrics.Registry

	ServerConfigs *servers.ConfigRegistry
	Servers       *servers.Registry

	OrchestratorConfigs *orchestrators.ConfigRegistry
	Orchestrators       *orchestrators.Registry
}

type options struct {
	metrics    *metrics.Registry
	vllmEngine vllm.EngineFactory
}

// Option customises NewCatalog.
type Option func(*options)

// WithMetrics shares reg with every plugin instead of a fresh registry.
func WithMetrics(reg *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = reg
	}
}

// WithVLLMEngine replaces the HTTP engine adapter of the vllm server.
func WithVLLMEngine(f vllm.EngineFactory) Option {
	return func(o *options) {
		o.vllmEngine = f
	}
}

// NewCatalog creates the registries and registers all plugins. It returns
// the first registration error.
func NewCatalog(log *logger.Logger, opts ...Option) (*Catalog, error) {
	if log == nil {
		log = logger.Nop()
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.New()
	}

	c := &Catalog{Metrics: o.metrics}
	c.ServerConfigs, c.Servers = servers.NewRegistries(log)
	c.OrchestratorConfigs, c.Orchestrators = orchestrators.NewRegistries(log)

	steps := []struct {
		name     string
		register func() error
	}{
		{vllm.Name, func() error {
			return vllm.Register(c.ServerConfigs, c.Servers, c.Metrics, log, o.vllmEngine)
		}},
		{ray.Name, func() error {
			return ray.Register(c.OrchestratorConfigs, c.Orchestrators, c.Servers, log)
		}},
	}
	for _, step := range steps {
		if err := step.register(); err != nil {
			return nil, fmt.Errorf("register %s plugin: %w", step.name, err)
		}
	}

	log.Debug().
		Strs("servers", c.Servers.Names()).
		Strs("orchestrators", c.Orchestrators.Names()).
		Msg("plugin catalog ready")
	return c, nil
}

// Entry describes one registered plugin.
type Entry struct {
	Kind       string
	Name       string
	ConfigType string
	EnvPrefix  string
}

// Entries lists every registered plugin, orchestrators first, each kind in
// name order.
func (c *Catalog) Entries() []Entry {
	var out []Entry
	out = appendEntries(out, c.Orchestrators.Kind(), c.OrchestratorConfigs.Registry,
		func(cfg orchestrators.Config) string { return cfg.EnvOptions().Prefix })
	out = appendEntries(out, c.Servers.Kind(), c.ServerConfigs.Registry,
		func(cfg servers.Config) string { return cfg.EnvOptions().Prefix })
	return out
}

func appendEntries[C any](out []Entry, kind registry.Kind, configs *registry.Registry[func() C], prefix func(C) string) []Entry {
	for _, name := range configs.Names() {
		newConfig, err := configs.Lookup(name)
		if err != nil {
			continue
		}
		cfg := newConfig()
		out = append(out, Entry{
			Kind:       kind.Name,
			Name:       name,
			ConfigType: fmt.Sprintf("%T", cfg),
			EnvPrefix:  prefix(cfg),
		})
	}
	return out
}
