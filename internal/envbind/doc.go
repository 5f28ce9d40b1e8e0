// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envbind binds flat environment variables onto typed configuration
// structs.
//
// A target struct carries its own defaults. [Bind] walks a [Snapshot] and,
// for every variable under the primary prefix, parses the raw string against
// the declared Go type of the matching field. Variables under the extra
// prefix land in the schema-less [Extra] bag instead. A value that cannot be
// parsed never fails the bind: the field keeps its default and the problem
// is recorded in the returned [Report].
//
// Field names are taken from the `env` struct tag, or derived from the Go
// field name in snake_case. Tag options:
//
//	env:"max_model_len"  explicit field key
//	env:",inline"        flatten a nested struct under the same prefix
//	env:",extra"         the single Extra bag of the struct
//	env:"-"              never bound
package envbind
