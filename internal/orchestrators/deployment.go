// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orchestrators

import (
	"strings"
	"time"
)

// Default deployment limits, applied when the orchestrator leaves a value
// unset.
const (
	DefaultRoutePrefix             = "/"
	DefaultMaxOngoingRequests      = 5
	DefaultMaxQueuedRequests       = -1
	DefaultHealthCheckPeriod       = 10 * time.Second
	DefaultHealthCheckTimeout      = 30 * time.Second
	DefaultGracefulShutdownTimeout = 20 * time.Second
)

// Deployment is the front end's view of an orchestrator's settings.
type Deployment struct {
	Name        string
	RoutePrefix string

	// MaxOngoingRequests caps requests processed at once. MaxQueuedRequests
	// caps requests waiting for a slot; a negative value means unbounded.
	MaxOngoingRequests int
	MaxQueuedRequests  int

	HealthCheckPeriod       time.Duration
	HealthCheckTimeout      time.Duration
	GracefulShutdownTimeout time.Duration

	// Settings holds every configured deployment option, unset ones
	// omitted.
	Settings map[string]any
}

// DefaultDeployment returns a descriptor with every limit at its default.
func DefaultDeployment() Deployment {
	return Deployment{
		RoutePrefix:             DefaultRoutePrefix,
		MaxOngoingRequests:      DefaultMaxOngoingRequests,
		MaxQueuedRequests:       DefaultMaxQueuedRequests,
		HealthCheckPeriod:       DefaultHealthCheckPeriod,
		HealthCheckTimeout:      DefaultHealthCheckTimeout,
		GracefulShutdownTimeout: DefaultGracefulShutdownTimeout,
		Settings:                map[string]any{},
	}
}

// Prefix returns RoutePrefix with a leading slash and without a trailing
// one; the root prefix yields "".
func (d Deployment) Prefix() string {
	p := strings.Trim(strings.TrimSpace(d.RoutePrefix), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// Unbounded reports whether requests are admitted without a concurrency
// limit.
func (d Deployment) Unbounded() bool {
	return d.MaxOngoingRequests <= 0
}
