// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/logger"
)

// Buildable is implemented by configuration structs. Build binds the
// receiver, which already holds its defaults, from env.
type Buildable interface {
	Build(env envbind.Snapshot) envbind.Report
}

// ConfigRegistry maps a plugin name to the default constructor of its
// configuration.
type ConfigRegistry[C Buildable] struct {
	*Registry[func() C]
	log *logger.Logger
}

// NewConfigRegistry creates a configuration registry. Every constructor is
// called once at registration and its result must be a valid bind target.
func NewConfigRegistry[C Buildable](kind Kind, log *logger.Logger) *ConfigRegistry[C] {
	if log == nil {
		log = logger.Nop()
	}
	cr := &ConfigRegistry[C]{log: log}
	cr.Registry = New(kind, cr.validateConstructor)
	return cr
}

func (cr *ConfigRegistry[C]) validateConstructor(name string, newConfig func() C) (err error) {
	kind := cr.kind.Name
	if newConfig == nil {
		return &InvalidPluginError{Kind: kind, Name: name, Type: fmt.Sprintf("%T", newConfig), Reason: "default constructor is nil"}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &InvalidPluginError{Kind: kind, Name: name, Type: ownerOf(newConfig), Reason: fmt.Sprintf("default constructor panicked: %v", r)}
		}
	}()

	cfg := newConfig()
	if isNil(cfg) {
		return &InvalidPluginError{Kind: kind, Name: name, Type: fmt.Sprintf("%T", cfg), Reason: "default constructor returned nil"}
	}

	if err := envbind.Validate(cfg); err != nil {
		field := ""
		var se *envbind.SchemaError
		if errors.As(err, &se) {
			field = se.Field
		}
		return &InvalidPluginError{Kind: kind, Name: name, Type: fmt.Sprintf("%T", cfg), Field: field, Reason: err.Error(), Err: err}
	}

	return nil
}

// GetInstance constructs the defaults registered under name and binds them
// from env. Values that fail to parse keep their default and are logged as
// warnings.
func (cr *ConfigRegistry[C]) GetInstance(name string, env envbind.Snapshot) (C, error) {
	newConfig, err := cr.Lookup(name)
	if err != nil {
		var zero C
		return zero, err
	}

	cfg := newConfig()
	report := cfg.Build(env)
	for _, d := range report.Degradations {
		cr.log.Warn().
			Str("kind", cr.kind.Name).
			Str("name", name).
			Str("key", d.Key).
			Str("field", d.Field).
			Err(d.Err).
			Msg("environment value ignored, default kept")
	}

	return cfg, nil
}
