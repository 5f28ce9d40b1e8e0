// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrRegistrationConflict is returned when a name is registered twice.
	ErrRegistrationConflict = errors.New("registration conflict")

	// ErrInvalidPlugin is returned when a registered value violates the
	// structural contract of its registry.
	ErrInvalidPlugin = errors.New("invalid plugin")

	// ErrUnknownKind is returned when a lookup names an unregistered plugin.
	ErrUnknownKind = errors.New("unknown kind")
)

// ConflictError reports a duplicate registration.
type ConflictError struct {
	Kind       string
	Name       string
	PriorOwner string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' is already registered by %s", e.Kind, e.Name, e.PriorOwner)
}

func (e *ConflictError) Unwrap() error {
	return ErrRegistrationConflict
}

// InvalidPluginError reports a value rejected at registration time.
type InvalidPluginError struct {
	Kind   string
	Name   string
	Type   string
	Field  string
	Reason string
	Err    error
}

func (e *InvalidPluginError) Error() string {
	msg := fmt.Sprintf("invalid %s '%s' (%s)", e.Kind, e.Name, e.Type)
	if e.Field != "" {
		msg += fmt.Sprintf(": field '%s'", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap exposes both ErrInvalidPlugin and the underlying cause.
func (e *InvalidPluginError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidPlugin}
	}
	return []error{ErrInvalidPlugin, e.Err}
}

// UnknownKindError reports a lookup of an unregistered name. Available is
// the sorted list of names registered at the time of the lookup.
type UnknownKindError struct {
	Selector  string
	Name      string
	Available []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unsupported %s_type: %s. available: %v", e.Selector, e.Name, e.Available)
}

func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownKind
}
