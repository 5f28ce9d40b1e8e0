// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// union is implemented by *Union2 so the binder can try each alternative in
// declaration order.
type union interface {
	alternatives() []reflect.Type
	set(v reflect.Value)
}

// Union2 holds a value of either type A or type B. When bound from the
// environment, A is tried first.
type Union2[A, B any] struct {
	value any
}

// First wraps a value of the first alternative.
func First[A, B any](v A) Union2[A, B] {
	return Union2[A, B]{value: v}
}

// Second wraps a value of the second alternative.
func Second[A, B any](v B) Union2[A, B] {
	return Union2[A, B]{value: v}
}

// Value returns the held value, or nil if nothing was set.
func (u Union2[A, B]) Value() any {
	return u.value
}

// First returns the held value if it is of type A.
func (u Union2[A, B]) First() (A, bool) {
	v, ok := u.value.(A)
	return v, ok
}

// Second returns the held value if it is of type B.
func (u Union2[A, B]) Second() (B, bool) {
	v, ok := u.value.(B)
	return v, ok
}

func (u Union2[A, B]) String() string {
	return fmt.Sprint(u.value)
}

func (u Union2[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.value)
}

func (u *Union2[A, B]) UnmarshalJSON(b []byte) error {
	var a A
	if err := json.Unmarshal(b, &a); err == nil {
		u.value = a
		return nil
	}
	var second B
	if err := json.Unmarshal(b, &second); err != nil {
		return err
	}
	u.value = second
	return nil
}

func (Union2[A, B]) alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (u *Union2[A, B]) set(v reflect.Value) {
	u.value = v.Interface()
}
