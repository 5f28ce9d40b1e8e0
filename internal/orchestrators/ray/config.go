// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ray

import (
	"time"

	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
)

// EnvPrefix is shared by the backend and deployment settings.
const EnvPrefix = "RAY_"

// DefaultBackendServerType is the server fronted when RAY_BACKEND_SERVER_TYPE
// is unset.
const DefaultBackendServerType = "vllm"

// BackendSettings selects the inference server.
type BackendSettings struct {
	BackendServerType string `env:"backend_server_type"`
}

// DeploymentSettings mirror the options of a Ray Serve deployment. Every
// field is optional; unset fields are left out of the descriptor.
type DeploymentSettings struct {
	Name    *string `env:"name"`
	Version *string `env:"version"`
	// NumReplicas is a replica count or "auto".
	NumReplicas *envbind.Union2[int, string] `env:"num_replicas"`
	RoutePrefix *string                      `env:"route_prefix"`

	RayActorOptions        map[string]any       `env:"ray_actor_options"`
	PlacementGroupBundles  []map[string]float64 `env:"placement_group_bundles"`
	PlacementGroupStrategy *string              `env:"placement_group_strategy"`
	MaxReplicasPerNode     *int                 `env:"max_replicas_per_node"`

	UserConfig         any            `env:"user_config"`
	MaxOngoingRequests *int           `env:"max_ongoing_requests"`
	MaxQueuedRequests  *int           `env:"max_queued_requests"`
	AutoscalingConfig  map[string]any `env:"autoscaling_config"`

	GracefulShutdownWaitLoopS *float64 `env:"graceful_shutdown_wait_loop_s"`
	GracefulShutdownTimeoutS  *float64 `env:"graceful_shutdown_timeout_s"`
	HealthCheckPeriodS        *float64 `env:"health_check_period_s"`
	HealthCheckTimeoutS       *float64 `env:"health_check_timeout_s"`

	LoggingConfig       map[string]any `env:"logging_config"`
	RequestRouterConfig map[string]any `env:"request_router_config"`
}

// Config is the ray orchestrator configuration. Both settings groups are
// bound from RAY_ variables.
type Config struct {
	Backend    BackendSettings    `env:",inline"`
	Deployment DeploymentSettings `env:",inline"`
}

// NewConfig returns the default ray configuration.
func NewConfig() *Config {
	return &Config{
		Backend: BackendSettings{BackendServerType: DefaultBackendServerType},
	}
}

// Build binds the configuration from env.
func (c *Config) Build(env envbind.Snapshot) envbind.Report {
	return envbind.Bind(env, c, c.EnvOptions())
}

// EnvOptions returns the RAY_ prefix. The ray config has no extra bag.
func (c *Config) EnvOptions() envbind.Options {
	return envbind.Options{Prefix: EnvPrefix}
}

// Settings returns the deployment settings that are set, keyed by their
// option names.
func (d DeploymentSettings) Settings() map[string]any {
	out := map[string]any{}
	put := func(key string, v any, set bool) {
		if set {
			out[key] = v
		}
	}

	put("name", deref(d.Name), d.Name != nil)
	put("version", deref(d.Version), d.Version != nil)
	if d.NumReplicas != nil && d.NumReplicas.Value() != nil {
		out["num_replicas"] = d.NumReplicas.Value()
	}
	put("route_prefix", deref(d.RoutePrefix), d.RoutePrefix != nil)
	put("ray_actor_options", d.RayActorOptions, d.RayActorOptions != nil)
	put("placement_group_bundles", d.PlacementGroupBundles, d.PlacementGroupBundles != nil)
	put("placement_group_strategy", deref(d.PlacementGroupStrategy), d.PlacementGroupStrategy != nil)
	put("max_replicas_per_node", deref(d.MaxReplicasPerNode), d.MaxReplicasPerNode != nil)
	put("user_config", d.UserConfig, d.UserConfig != nil)
	put("max_ongoing_requests", deref(d.MaxOngoingRequests), d.MaxOngoingRequests != nil)
	put("max_queued_requests", deref(d.MaxQueuedRequests), d.MaxQueuedRequests != nil)
	put("autoscaling_config", d.AutoscalingConfig, d.AutoscalingConfig != nil)
	put("graceful_shutdown_wait_loop_s", deref(d.GracefulShutdownWaitLoopS), d.GracefulShutdownWaitLoopS != nil)
	put("graceful_shutdown_timeout_s", deref(d.GracefulShutdownTimeoutS), d.GracefulShutdownTimeoutS != nil)
	put("health_check_period_s", deref(d.HealthCheckPeriodS), d.HealthCheckPeriodS != nil)
	put("health_check_timeout_s", deref(d.HealthCheckTimeoutS), d.HealthCheckTimeoutS != nil)
	put("logging_config", d.LoggingConfig, d.LoggingConfig != nil)
	put("request_router_config", d.RequestRouterConfig, d.RequestRouterConfig != nil)

	return out
}

// Descriptor converts the settings into a front end deployment, filling
// unset limits with their defaults.
func (d DeploymentSettings) Descriptor() orchestrators.Deployment {
	dep := orchestrators.DefaultDeployment()
	dep.Settings = d.Settings()

	if d.Name != nil {
		dep.Name = *d.Name
	}
	if d.RoutePrefix != nil && *d.RoutePrefix != "" {
		dep.RoutePrefix = *d.RoutePrefix
	}
	if d.MaxOngoingRequests != nil {
		dep.MaxOngoingRequests = *d.MaxOngoingRequests
	}
	if d.MaxQueuedRequests != nil {
		dep.MaxQueuedRequests = *d.MaxQueuedRequests
	}
	if d.HealthCheckPeriodS != nil && *d.HealthCheckPeriodS > 0 {
		dep.HealthCheckPeriod = seconds(*d.HealthCheckPeriodS)
	}
	if d.HealthCheckTimeoutS != nil && *d.HealthCheckTimeoutS > 0 {
		dep.HealthCheckTimeout = seconds(*d.HealthCheckTimeoutS)
	}
	if d.GracefulShutdownTimeoutS != nil && *d.GracefulShutdownTimeoutS >= 0 {
		dep.GracefulShutdownTimeout = seconds(*d.GracefulShutdownTimeoutS)
	}
	return dep
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
