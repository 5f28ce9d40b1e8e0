// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

func sortStrings(s []string) {
	slices.Sort(s)
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrUnparsable, raw)
}

// parseValue converts raw into a value of type t.
func parseValue(t reflect.Type, raw string) (reflect.Value, error) {
	s := strings.TrimSpace(raw)

	if t.Kind() == reflect.Pointer {
		if s == "" {
			return reflect.Zero(t), nil
		}
		v, err := parseValue(t.Elem(), raw)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		return p, nil
	}

	if reflect.PointerTo(t).Implements(unionType) {
		return parseUnion(t, raw)
	}

	if t == durationType {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return reflect.ValueOf(time.Duration(f * float64(time.Second))), nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
		}
		return reflect.ValueOf(d), nil
	}

	if t.Implements(enumType) && t.Kind() == reflect.String {
		member, ok := matchEnum(reflect.Zero(t).Interface().(Enum), s)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %q is not a member of %s", ErrUnparsable, s, t)
		}
		v := reflect.New(t).Elem()
		v.SetString(member)
		return v, nil
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		p := reflect.New(t)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
		}
		return p.Elem(), nil
	}

	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if s == "null" {
			return reflect.Value{}, fmt.Errorf("%w: null is not a %s", ErrUnparsable, t)
		}
		return parseJSONInto(t, s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
		}
		v.SetFloat(f)
	case reflect.String:
		v.SetString(s)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return reflect.Value{}, ErrUnsupportedType
		}
		if x := ParseJSONValue(raw); x != nil {
			v.Set(reflect.ValueOf(x))
		}
	case reflect.Struct:
		if !strings.HasPrefix(s, "{") {
			return reflect.Value{}, fmt.Errorf("%w: %s expects a JSON object", ErrUnparsable, t)
		}
		return parseJSONInto(t, s)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return v, nil
}

func parseUnion(t reflect.Type, raw string) (reflect.Value, error) {
	p := reflect.New(t)
	u := p.Interface().(union)
	for _, alt := range u.alternatives() {
		v, err := parseValue(alt, raw)
		if err != nil {
			continue
		}
		u.set(v)
		return p.Elem(), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %q matches no alternative of %s", ErrUnparsable, raw, t)
}

// parseJSONInto decodes s and coerces it to t. Generic JSON shapes that are
// directly assignable keep their int64 numbers; everything else goes through
// encoding/json.
func parseJSONInto(t reflect.Type, s string) (reflect.Value, error) {
	generic, err := decodeJSON(s)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
	}
	// encoding/json drops extra elements of a fixed-size array silently.
	if t.Kind() == reflect.Array {
		list, ok := generic.([]any)
		if !ok || len(list) != t.Len() {
			return reflect.Value{}, fmt.Errorf("%w: %s needs a JSON array of %d elements", ErrUnparsable, t, t.Len())
		}
	}
	if generic != nil && reflect.TypeOf(generic).AssignableTo(t) {
		v := reflect.New(t).Elem()
		v.Set(reflect.ValueOf(generic))
		return v, nil
	}

	p := reflect.New(t)
	if err := json.Unmarshal([]byte(s), p.Interface()); err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
	}
	return p.Elem(), nil
}
