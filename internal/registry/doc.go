// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry maps plugin names to configuration constructors and
// implementation factories.
//
// A single generic [Registry] carries the register/validate/lookup logic.
// It is specialised twice: [ConfigRegistry] stores default constructors for
// configuration structs and builds them from an environment snapshot, and
// [ImplementationRegistry] stores factories that receive the bound
// configuration of the same name.
//
// Registries are populated once during startup by explicit Register calls
// and are read-only afterwards, so reads need no synchronisation.
package registry
