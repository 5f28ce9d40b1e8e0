// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/oc-serve/internal/envbind"
)

// StructuredConfig is the top-level configuration container of the gateway.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// OCServe holds the bootstrap selector and the front end settings.
	OCServe OCServe `envPrefix:"OC_SERVE_"`

	// Log holds console and file sink settings.
	Log Log `envPrefix:"OC_LOG_"`

	// Describe asks the process to print the registered plugins and exit.
	// Set only by the -describe flag.
	Describe bool

	// IssueToken asks the process to print a bearer token for this subject,
	// signed with OCServe.Auth, and exit. Set only by the -issue-token flag.
	IssueToken string

	// TokenTTL is the lifetime of a token printed for IssueToken.
	TokenTTL time.Duration
}

// OCServe holds the orchestrator selector and the settings of the HTTP and
// gRPC front ends.
type OCServe struct {
	// OrchestratorType names the orchestrator resolved at startup.
	// Env: OC_SERVE_ORCHESTRATOR_TYPE
	OrchestratorType string `env:"ORCHESTRATOR_TYPE"`

	// HTTPAddress is the TCP address of the HTTP front end, in "host:port"
	// format.
	// Env: OC_SERVE_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service. Empty
	// disables it.
	// Env: OC_SERVE_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single non-streaming request. Zero means no
	// limit beyond the engine's own timeout.
	// Env: OC_SERVE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Auth enables bearer token checks when SignKey is set.
	Auth Auth `envPrefix:"AUTH_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file.
	// Env: OC_SERVE_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// Auth holds the JWT settings of the optional auth middleware.
type Auth struct {
	// SignKey is the HMAC key tokens are verified with.
	// Env: OC_SERVE_AUTH_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// Issuer is the expected "iss" claim. Empty accepts any issuer.
	// Env: OC_SERVE_AUTH_ISSUER
	Issuer string `env:"ISSUER"`
}

// Enabled reports whether requests must carry a bearer token.
func (a Auth) Enabled() bool {
	return a.SignKey != ""
}

// Log holds logger sink settings. Levels are zerolog level names and are
// case-insensitive.
type Log struct {
	// File is the path of the rotated log file. Empty disables the file
	// sink.
	// Env: OC_LOG_FILE
	File string `env:"FILE"`

	// ConsoleLevel is the minimum level written to stdout.
	// Env: OC_LOG_CONSOLE_LEVEL
	ConsoleLevel string `env:"CONSOLE_LEVEL"`

	// FileLevel is the minimum level written to File.
	// Env: OC_LOG_FILE_LEVEL
	FileLevel string `env:"FILE_LEVEL"`

	// MaxBytes is the size at which File is rotated.
	// Env: OC_LOG_MAX_BYTES
	MaxBytes int64 `env:"MAX_BYTES"`

	// BackupCount is the number of rotated files kept.
	// Env: OC_LOG_BACKUP_COUNT
	BackupCount int `env:"BACKUP_COUNT"`

	// BaseLevel is the global minimum level.
	// Env: OC_LOG_BASE_LEVEL
	BaseLevel string `env:"BASE_LEVEL"`
}

// DefaultTokenTTL is the lifetime of tokens printed by -issue-token.
const DefaultTokenTTL = 24 * time.Hour

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		OCServe: OCServe{
			OrchestratorType: "ray",
			HTTPAddress:      "0.0.0.0:8000",
		},
		Log:      DefaultLog(),
		TokenTTL: DefaultTokenTTL,
	}
}

// DefaultLog returns the built-in logger settings.
func DefaultLog() Log {
	return Log{
		File:         "/home/ray/logs/llm_serve.log",
		ConsoleLevel: "info",
		FileLevel:    "debug",
		MaxBytes:     20 * 1024 * 1024,
		BackupCount:  7,
		BaseLevel:    "debug",
	}
}

// GetStructuredConfig loads, merges, and validates the gateway
// configuration from defaults, the optional config file, env and the
// command-line arguments (without the program name).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(env envbind.Snapshot, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(env).
		withFlags(args).
		withFile().
		build()
}
