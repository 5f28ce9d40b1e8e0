// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package servers defines the inference server plugin kind and its two
// registries: server configurations and server implementations.
//
// A server wraps one external inference engine. It owns the concurrency
// permit gate around every call to that engine.
package servers

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/registry"
	"github.com/MKhiriev/oc-serve/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

// Config is implemented by every server configuration.
type Config interface {
	registry.Buildable

	// EnvOptions returns the variable prefixes the configuration is bound
	// from.
	EnvOptions() envbind.Options
}

// Server is the request-handling surface of an inference backend. Every
// method except Metrics and Close acquires a concurrency permit before
// calling the engine and releases it on every exit path.
type Server interface {
	CheckModelHealth(ctx context.Context) (models.Response, error)
	ModelInfo(ctx context.Context) (models.Response, error)
	Instruct(ctx context.Context, req models.ChatCompletionRequest) (models.Response, error)
	Complete(ctx context.Context, req models.CompletionRequest) (models.Response, error)
	Transcribe(ctx context.Context, req models.TranscriptionRequest) (models.Response, error)
	Tokenize(ctx context.Context, req models.TokenizeRequest) (models.Response, error)
	Detokenize(ctx context.Context, req models.DetokenizeRequest) (models.Response, error)
	Score(ctx context.Context, req models.ScoreRequest) (models.Response, error)
	Pooling(ctx context.Context, req models.PoolingRequest) (models.Response, error)
	Metrics() prometheus.Gatherer
	Close() error
}

// Registry kinds used in error messages.
var (
	ConfigKind = registry.Kind{Name: "server config", Selector: "server"}
	Kind       = registry.Kind{Name: "server", Selector: "server"}
)

type (
	// ConfigRegistry maps a server name to its default configuration.
	ConfigRegistry = registry.ConfigRegistry[Config]

	// Registry maps a server name to its factory.
	Registry = registry.ImplementationRegistry[Config, Server]

	// Factory builds a server from its bound configuration.
	Factory = registry.Factory[Config, Server]
)

// NewRegistries creates an empty pair of server registries.
func NewRegistries(log *logger.Logger) (*ConfigRegistry, *Registry) {
	configs := registry.NewConfigRegistry[Config](ConfigKind, log)
	return configs, registry.NewImplementationRegistry[Config, Server](Kind, configs)
}
