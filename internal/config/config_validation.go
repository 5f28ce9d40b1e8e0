// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping
// ErrInvalidServeConfigs or ErrInvalidLogConfigs otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.OCServe.OrchestratorType) == "" {
		return fmt.Errorf("%w: orchestrator type is empty", ErrInvalidServeConfigs)
	}

	if cfg.OCServe.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServeConfigs)
	}

	if cfg.OCServe.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServeConfigs)
	}

	if cfg.IssueToken != "" {
		if !cfg.OCServe.Auth.Enabled() {
			return fmt.Errorf("%w: -issue-token needs an auth sign key", ErrInvalidServeConfigs)
		}
		if cfg.TokenTTL <= 0 {
			return fmt.Errorf("%w: token ttl must be positive", ErrInvalidServeConfigs)
		}
	}

	for name, level := range map[string]string{
		"console level": cfg.Log.ConsoleLevel,
		"file level":    cfg.Log.FileLevel,
		"base level":    cfg.Log.BaseLevel,
	} {
		if _, err := ParseLevel(level); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidLogConfigs, name, err)
		}
	}

	if cfg.Log.MaxBytes < 0 || cfg.Log.BackupCount < 0 {
		return fmt.Errorf("%w: negative rotation settings", ErrInvalidLogConfigs)
	}

	return nil
}

// ParseLevel converts a level name into a zerolog level. Names are
// case-insensitive, "warning" and "critical" are accepted and an empty name
// means debug.
func ParseLevel(name string) (zerolog.Level, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "":
		return zerolog.DebugLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.ParseLevel(n)
	}
}
