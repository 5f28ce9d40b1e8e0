// Package config provides configuration loading, merging, and validation
// facilities for the gateway process.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file (OC_SERVE_CONFIG or -config)
//  3. Environment variables (OC_SERVE_* and OC_LOG_*)
//  4. Command-line flags
//
// Environment variables are read from an [envbind.Snapshot] so the process
// configuration and the plugin configurations see the same environment.
//
// The main entry point is [GetStructuredConfig].
package config
