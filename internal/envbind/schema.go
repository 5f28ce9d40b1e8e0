// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
)

const tagName = "env"

var (
	durationType        = reflect.TypeFor[time.Duration]()
	extraType           = reflect.TypeFor[Extra]()
	enumType            = reflect.TypeFor[Enum]()
	unionType           = reflect.TypeFor[union]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

type field struct {
	key   string
	path  string
	index []int
	typ   reflect.Type
}

type schema struct {
	typ    reflect.Type
	fields map[string]field
	extra  []int
}

var schemas sync.Map // reflect.Type -> *schema

func schemaFor(t reflect.Type) (*schema, error) {
	if cached, ok := schemas.Load(t); ok {
		return cached.(*schema), nil
	}
	s := &schema{typ: t, fields: make(map[string]field)}
	if err := s.collect(t, nil, ""); err != nil {
		return nil, err
	}
	schemas.Store(t, s)
	return s, nil
}

func (s *schema) collect(t reflect.Type, index []int, path string) error {
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, opt := parseTag(sf)
		if name == "-" && opt == "" {
			continue
		}

		idx := append(append([]int(nil), index...), i)
		fieldPath := sf.Name
		if path != "" {
			fieldPath = path + "." + sf.Name
		}

		switch opt {
		case "inline":
			if sf.Type.Kind() != reflect.Struct {
				return s.fail(fieldPath, "is marked inline but is not a struct", nil)
			}
			if err := s.collect(sf.Type, idx, fieldPath); err != nil {
				return err
			}
			continue
		case "extra":
			if sf.Type != extraType {
				return s.fail(fieldPath, "is marked extra but is not envbind.Extra", nil)
			}
			if s.extra != nil {
				return s.fail(fieldPath, "is a second extra bag", nil)
			}
			s.extra = idx
			continue
		case "":
		default:
			return s.fail(fieldPath, fmt.Sprintf("has unknown tag option %q", opt), nil)
		}

		if name == "" {
			name = snakeCase(sf.Name)
		}
		key := NormalizeKey(name)
		if prev, ok := s.fields[key]; ok {
			return s.fail(fieldPath, fmt.Sprintf("collides with '%s' on key '%s'", prev.path, key), nil)
		}
		if reason := unsupported(sf.Type); reason != "" {
			return s.fail(fieldPath, reason, ErrUnsupportedType)
		}

		s.fields[key] = field{key: key, path: fieldPath, index: idx, typ: sf.Type}
	}
	return nil
}

func (s *schema) fail(path, reason string, err error) error {
	return &SchemaError{Type: s.typ.String(), Field: path, Reason: reason, Err: err}
}

func parseTag(sf reflect.StructField) (name, opt string) {
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok {
		return "", ""
	}
	name, opt, _ = strings.Cut(tag, ",")
	return strings.TrimSpace(name), strings.TrimSpace(opt)
}

// unsupported returns a non-empty reason when t cannot be parsed from a
// single environment string.
func unsupported(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		if t.Elem().Kind() == reflect.Pointer {
			return "is a pointer to a pointer"
		}
		return unsupported(t.Elem())
	}

	if reflect.PointerTo(t).Implements(unionType) {
		alts := reflect.New(t).Interface().(union).alternatives()
		for _, alt := range alts {
			if reason := unsupported(alt); reason != "" {
				return fmt.Sprintf("has union alternative %s that %s", alt, reason)
			}
		}
		return ""
	}

	if t == durationType {
		return ""
	}
	if t.Implements(enumType) {
		if t.Kind() != reflect.String {
			return "implements Enum but is not string-kinded"
		}
		return ""
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return ""
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return ""
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return ""
		}
		return "is a non-empty interface"
	default:
		return fmt.Sprintf("has unsupported kind %s", t.Kind())
	}
}

// Validate checks that target is a non-nil pointer to a struct every field of
// which the binder can fill. It is run by config registries when a schema is
// registered, so a broken schema fails at startup rather than at bind time.
func Validate(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return &SchemaError{Type: fmt.Sprintf("%T", target), Reason: "is not a non-nil pointer to a struct", Err: ErrInvalidTarget}
	}
	_, err := schemaFor(rv.Elem().Type())
	return err
}

// Keys returns the sorted field keys the binder recognises for target.
func Keys(target any) ([]string, error) {
	if err := Validate(target); err != nil {
		return nil, err
	}
	s, _ := schemaFor(reflect.TypeOf(target).Elem())
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys, nil
}
