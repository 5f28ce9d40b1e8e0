// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"os"
	"sort"
	"strings"
)

// Snapshot is an immutable view of the process environment captured once at
// startup. The zero value is an empty environment.
type Snapshot struct {
	vars map[string]string
}

// NewSnapshot copies vars into a new Snapshot.
func NewSnapshot(vars map[string]string) Snapshot {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return Snapshot{vars: copied}
}

// FromPairs builds a Snapshot from "KEY=value" pairs as returned by
// [os.Environ]. Pairs without '=' are ignored.
func FromPairs(pairs []string) Snapshot {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return Snapshot{vars: vars}
}

// FromOS captures the current process environment.
func FromOS() Snapshot {
	return FromPairs(os.Environ())
}

// Lookup returns the raw value of key.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Keys returns all variable names in lexical order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying variables.
func (s Snapshot) Map() map[string]string {
	copied := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		copied[k] = v
	}
	return copied
}

// Len reports the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}
