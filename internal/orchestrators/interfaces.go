// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package orchestrators defines the orchestrator plugin kind and its two
// registries.
//
// An orchestrator is selected by name at startup. It resolves the inference
// server it fronts and describes how the HTTP front end should be deployed
// (route prefix, request limits, health-check cadence).
package orchestrators

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/registry"
	"github.com/MKhiriev/oc-serve/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/orchestrator_mock.go -package=mock

// Config is implemented by every orchestrator configuration.
type Config interface {
	registry.Buildable

	// EnvOptions returns the variable prefixes the configuration is bound
	// from.
	EnvOptions() envbind.Options
}

// Orchestrator is the request surface exposed to the HTTP front end.
type Orchestrator interface {
	// CheckAPIHealth answers without contacting the engine.
	CheckAPIHealth(ctx context.Context) (models.Response, error)

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

	// Deployment describes how the front end should serve this
	// orchestrator.
	Deployment() Deployment

	Close() error
}

// Registry kinds used in error messages.
var (
	ConfigKind = registry.Kind{Name: "orchestrator config", Selector: "orchestrator"}
	Kind       = registry.Kind{Name: "orchestrator", Selector: "orchestrator"}
)

type (
	// ConfigRegistry maps an orchestrator name to its default configuration.
	ConfigRegistry = registry.ConfigRegistry[Config]

	// Registry maps an orchestrator name to its factory.
	Registry = registry.ImplementationRegistry[Config, Orchestrator]

	// Factory builds an orchestrator from its bound configuration.
	Factory = registry.Factory[Config, Orchestrator]
)

// NewRegistries creates an empty pair of orchestrator registries.
func NewRegistries(log *logger.Logger) (*ConfigRegistry, *Registry) {
	configs := registry.NewConfigRegistry[Config](ConfigKind, log)
	return configs, registry.NewImplementationRegistry[Config, Orchestrator](Kind, configs)
}
