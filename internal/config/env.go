// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/oc-serve/internal/envbind"
)

// parseEnv populates cfg from the variables of snapshot using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if parsing fails (e.g. a value cannot be converted
// to the target type).
func parseEnv(cfg any, snapshot envbind.Snapshot) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: snapshot.Map()})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
