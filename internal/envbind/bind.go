// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Options selects which variables of a snapshot feed a bind.
type Options struct {
	// Prefix selects declared fields, e.g. "VLLM_".
	Prefix string
	// ExtraPrefix selects entries of the Extra bag, e.g. "VLLM_EXTRA_".
	// It takes precedence over Prefix when both match.
	ExtraPrefix string
}

// Degradation records a variable whose raw value could not be parsed. The
// field it targeted kept its default.
type Degradation struct {
	Key   string
	Field string
	Raw   string
	Err   error
}

func (d Degradation) Error() string {
	if d.Key == "" {
		return d.Err.Error()
	}
	return fmt.Sprintf("%s -> %s: %v", d.Key, d.Field, d.Err)
}

func (d Degradation) Unwrap() error {
	return d.Err
}

// Report is the outcome of a bind.
type Report struct {
	// Bound lists the field keys that received a value from the snapshot.
	Bound []string
	// Extra lists the keys written into the Extra bag.
	Extra []string
	// Degradations lists every variable that was ignored because it could
	// not be parsed.
	Degradations []Degradation
}

// OK reports whether the bind had no degradations.
func (r Report) OK() bool {
	return len(r.Degradations) == 0
}

// Err joins all degradations into one error, or returns nil.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Degradations))
	for i, d := range r.Degradations {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// Merge appends other to r.
func (r Report) Merge(other Report) Report {
	r.Bound = append(r.Bound, other.Bound...)
	r.Extra = append(r.Extra, other.Extra...)
	r.Degradations = append(r.Degradations, other.Degradations...)
	return r
}

// Bind fills target from env. target must be a pointer to a struct that
// already holds its defaults. Bind never fails: unusable values are skipped
// and reported.
func Bind(env Snapshot, target any, opts Options) Report {
	var rep Report

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		rep.Degradations = append(rep.Degradations, Degradation{Err: ErrInvalidTarget})
		return rep
	}
	s, err := schemaFor(rv.Elem().Type())
	if err != nil {
		rep.Degradations = append(rep.Degradations, Degradation{Err: err})
		return rep
	}
	root := rv.Elem()

	for _, key := range env.Keys() {
		raw, _ := env.Lookup(key)

		if rest, ok := strings.CutPrefix(key, opts.ExtraPrefix); ok && opts.ExtraPrefix != "" {
			name := NormalizeKey(rest)
			if name == "" || s.extra == nil {
				continue
			}
			bag := root.FieldByIndex(s.extra)
			if bag.IsNil() {
				bag.Set(reflect.ValueOf(Extra{}))
			}
			bag.Interface().(Extra).Set(name, ParseJSONValue(raw))
			rep.Extra = append(rep.Extra, name)
			continue
		}

		rest, ok := strings.CutPrefix(key, opts.Prefix)
		if !ok {
			continue
		}
		f, ok := s.fields[NormalizeKey(rest)]
		if !ok {
			continue
		}

		v, err := parseValue(f.typ, raw)
		if err != nil {
			rep.Degradations = append(rep.Degradations, Degradation{Key: key, Field: f.path, Raw: raw, Err: err})
			continue
		}
		root.FieldByIndex(f.index).Set(v)
		rep.Bound = append(rep.Bound, f.key)
	}

	return rep
}
