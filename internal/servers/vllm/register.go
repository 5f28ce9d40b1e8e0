// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vllm

import (
	"fmt"

	"github.com/MKhiriev/oc-serve/internal/adapter"
	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/registry"
	"github.com/MKhiriev/oc-serve/internal/servers"
)

var _ servers.Server = (*Server)(nil)

// EngineFactory opens the engine adapter for a bound configuration.
type EngineFactory func(cfg *Config, log *logger.Logger) (adapter.EngineAdapter, error)

// NewHTTPEngine is the default EngineFactory.
func NewHTTPEngine(cfg *Config, log *logger.Logger) (adapter.EngineAdapter, error) {
	return adapter.NewHTTPEngineAdapter(cfg.EngineConfig(), log)
}

// EngineConfig translates cfg into adapter settings.
func (c *Config) EngineConfig() adapter.HTTPEngineConfig {
	return adapter.HTTPEngineConfig{
		BaseURL:            c.EngineURL,
		Timeout:            c.RequestTimeout,
		ChatDefaults:       c.ChatDefaults(),
		CompletionDefaults: c.CompletionDefaults(),
		TokenizeDefaults:   c.TokenizeDefaults(),
	}
}

// Register adds the vllm configuration and factory to the server
// registries. Servers built by the factory report to reg. A nil newEngine
// means NewHTTPEngine.
func Register(configs *servers.ConfigRegistry, impls *servers.Registry, reg *metrics.Registry, log *logger.Logger, newEngine EngineFactory) error {
	if newEngine == nil {
		newEngine = NewHTTPEngine
	}
	if log == nil {
		log = logger.Nop()
	}

	if err := configs.Register(Name, func() servers.Config { return NewConfig() }); err != nil {
		return err
	}

	build := func(cfg *Config, _ envbind.Snapshot) (servers.Server, error) {
		serverLog := &logger.Logger{Logger: log.With().Str("server", Name).Logger()}

		engine, err := newEngine(cfg, serverLog)
		if err != nil {
			return nil, fmt.Errorf("open engine: %w", err)
		}

		serverLog.Info().
			Str("model", cfg.ModelName()).
			Str("engine_url", cfg.EngineURL).
			Int64("max_concurrent_calls", cfg.MaxConcurrentCalls()).
			Msg("vllm server created")
		return New(cfg, engine, reg, serverLog), nil
	}

	return registry.RegisterTyped(impls, Name, build)
}
