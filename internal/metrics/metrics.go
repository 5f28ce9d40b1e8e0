// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus registry exposed on /metrics.
//
// A single [Registry] is created at startup and shared by the HTTP front end
// (request counters and latency), the inference server (engine calls and
// concurrency permits) and the health probe (model health gauge).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "ocserve"

var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

// Registry bundles the process metrics.
type Registry struct {
	*prometheus.Registry

	HTTP   *HTTP
	Engine *Engine
}

// New creates a registry with the Go runtime and process collectors and all
// gateway metrics registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		Registry: reg,
		HTTP:     newHTTP(reg),
		Engine:   newEngine(reg),
	}
}

// HTTP holds front end request metrics.
type HTTP struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newHTTP(reg prometheus.Registerer) *HTTP {
	m := &HTTP{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"handler", "method", "code"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_request_errors_total",
			Help:      "Total number of HTTP requests that resulted in a server error.",
		}, []string{"handler", "method"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   latencyBuckets,
		}, []string{"handler", "method"}),
	}
	reg.MustRegister(m.requests, m.errors, m.latency)
	return m
}

// ObserveHTTPRequest records one finished request.
func (m *HTTP) ObserveHTTPRequest(handler, method string, status int, duration time.Duration) {
	m.requests.WithLabelValues(handler, method, strconv.Itoa(status)).Inc()
	if status >= 500 {
		m.errors.WithLabelValues(handler, method).Inc()
	}
	m.latency.WithLabelValues(handler, method).Observe(duration.Seconds())
}

// Engine holds inference server metrics.
type Engine struct {
	calls       *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	inFlight    prometheus.Gauge
	capacity    prometheus.Gauge
	modelHealth prometheus.Gauge
}

func newEngine(reg prometheus.Registerer) *Engine {
	m := &Engine{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "calls_total",
			Help:      "Engine calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "call_duration_seconds",
			Help:      "Engine call duration in seconds, permit wait excluded.",
			Buckets:   latencyBuckets,
		}, []string{"endpoint"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "permits_in_use",
			Help:      "Concurrency permits currently held.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "permits_capacity",
			Help:      "Maximum number of concurrent engine calls.",
		}),
		modelHealth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "model_healthy",
			Help:      "1 when the last model health check succeeded, 0 otherwise.",
		}),
	}
	reg.MustRegister(m.calls, m.latency, m.inFlight, m.capacity, m.modelHealth)
	return m
}

// Outcome labels for ObserveCall.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeCancelled = "cancelled"
	OutcomeDisabled  = "disabled"
)

// ObserveCall records one engine call.
func (m *Engine) ObserveCall(endpoint, outcome string, duration time.Duration) {
	m.calls.WithLabelValues(endpoint, outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeError {
		m.latency.WithLabelValues(endpoint).Observe(duration.Seconds())
	}
}

// SetCapacity publishes the permit limit.
func (m *Engine) SetCapacity(n int64) {
	m.capacity.Set(float64(n))
}

// PermitAcquired increments the in-use gauge.
func (m *Engine) PermitAcquired() {
	m.inFlight.Inc()
}

// PermitReleased decrements the in-use gauge.
func (m *Engine) PermitReleased() {
	m.inFlight.Dec()
}

// SetModelHealthy publishes the result of the last health check.
func (m *Engine) SetModelHealthy(ok bool) {
	if ok {
		m.modelHealth.Set(1)
		return
	}
	m.modelHealth.Set(0)
}
