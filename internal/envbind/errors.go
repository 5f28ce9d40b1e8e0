// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is reported when Bind or Validate receives something
	// other than a non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("bind target must be a non-nil pointer to a struct")

	// ErrUnparsable marks a raw value that none of the parse rules accepted.
	ErrUnparsable = errors.New("value cannot be parsed")

	// ErrUnsupportedType marks a field whose Go type the binder cannot fill.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// SchemaError describes a structural problem with a bind target.
type SchemaError struct {
	// Type is the Go type of the target struct.
	Type string
	// Field is the Go field path (e.g. "Deployment.NumReplicas").
	Field string
	// Reason explains what is wrong with the field.
	Reason string
	// Err is the underlying sentinel, if any.
	Err error
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("%s: field '%s' %s", e.Type, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
