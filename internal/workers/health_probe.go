// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
)

// HealthProbe periodically asks the orchestrator whether the model answers
// and publishes the result to the model_healthy gauge and every reporter.
type HealthProbe struct {
	orchestrator orchestrators.Orchestrator
	period       time.Duration
	timeout      time.Duration

	metrics   *metrics.Registry
	reporters []HealthReporter

	logger *logger.Logger
}

func NewHealthProbe(
	orchestrator orchestrators.Orchestrator,
	deployment orchestrators.Deployment,
	reg *metrics.Registry,
	logger *logger.Logger,
	reporters ...HealthReporter,
) *HealthProbe {
	period := deployment.HealthCheckPeriod
	if period <= 0 {
		period = orchestrators.DefaultHealthCheckPeriod
	}
	timeout := deployment.HealthCheckTimeout
	if timeout <= 0 {
		timeout = orchestrators.DefaultHealthCheckTimeout
	}

	return &HealthProbe{
		orchestrator: orchestrator,
		period:       period,
		timeout:      timeout,
		metrics:      reg,
		reporters:    reporters,
		logger:       logger,
	}
}

// Run probes once immediately and then every period until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) error {
	p.logger.Info().
		Dur("period", p.period).
		Dur("timeout", p.timeout).
		Msg("health probe started")

	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	healthy := p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("health probe stopped")
			return nil
		case <-ticker.C:
			ok := p.probe(ctx)
			if ok != healthy {
				p.logger.Info().Bool("healthy", ok).Msg("model health changed")
			}
			healthy = ok
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.orchestrator.CheckModelHealth(ctx)
	_ = resp.Close()

	ok := err == nil && resp.StatusCode < http.StatusBadRequest
	if !ok {
		p.logger.Warn().Err(err).Int("status", resp.StatusCode).Msg("model health check failed")
	}

	if p.metrics != nil {
		p.metrics.Engine.SetModelHealthy(ok)
	}
	for _, r := range p.reporters {
		r.SetServing(ok)
	}
	return ok
}
