package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServeConfigs indicates invalid bootstrap or front end
	// settings (for example, an empty orchestrator type or HTTP address).
	ErrInvalidServeConfigs = errors.New("invalid oc-serve configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings (for example,
	// an unknown level name or a negative rotation size).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
