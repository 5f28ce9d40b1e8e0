// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Extra is an open bag of tuning flags that bypasses the declared schema.
//
// Values are restricted to JSON shapes: nil, bool, int64, float64, string,
// []any and map[string]any. Keys are normalised with [NormalizeKey].
type Extra map[string]any

// Set stores v under the normalised key.
func (e Extra) Set(key string, v any) {
	e[NormalizeKey(key)] = v
}

// Get returns the value stored under key.
func (e Extra) Get(key string) (any, bool) {
	v, ok := e[NormalizeKey(key)]
	return v, ok
}

// Has reports whether key is present, even with a nil value.
func (e Extra) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// Clone returns a shallow copy of the bag.
func (e Extra) Clone() Extra {
	out := make(Extra, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into e, overwriting existing keys.
func (e Extra) Merge(other Extra) {
	for k, v := range other {
		e[NormalizeKey(k)] = v
	}
}

// String returns the value under key rendered as a string, or def when the
// key is absent or nil.
func (e Extra) String(key, def string) string {
	v, ok := e.Get(key)
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the value under key as an int. Integral floats, booleans and
// numeric strings are converted; anything else yields def.
func (e Extra) Int(key string, def int) int {
	v, ok := e.Get(key)
	if !ok {
		return def
	}
	switch x := v.(type) {
	case int64:
		return int(x)
	case int:
		return x
	case float64:
		if x == math.Trunc(x) {
			return int(x)
		}
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n
		}
	}
	return def
}

// Float returns the value under key as a float64, or def.
func (e Extra) Float(key string, def float64) float64 {
	v, ok := e.Get(key)
	if !ok {
		return def
	}
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return def
}

// Bool returns the value under key as a bool. Numbers are true when
// non-zero; strings follow the same vocabulary as boolean fields.
func (e Extra) Bool(key string, def bool) bool {
	v, ok := e.Get(key)
	if !ok || v == nil {
		return def
	}
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	case string:
		if b, err := parseBool(x); err == nil {
			return b
		}
	}
	return def
}

var errTrailingData = errors.New("trailing data after JSON value")

// ParseJSONValue decodes raw as JSON and falls back to the raw string when it
// is not valid JSON. Integral numbers come back as int64.
func ParseJSONValue(raw string) any {
	v, err := decodeJSON(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return v
}

func decodeJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return normalizeNumbers(v), nil
}

func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		for i := range x {
			x[i] = normalizeNumbers(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalizeNumbers(x[k])
		}
		return x
	default:
		return v
	}
}
