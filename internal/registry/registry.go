// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
)

// Kind identifies what a registry holds.
type Kind struct {
	// Name is used in error messages, e.g. "server config".
	Name string
	// Selector is the prefix of the selector variable family, e.g. "server"
	// for errors of the form "unsupported server_type: x".
	Selector string
}

type entry[T any] struct {
	value T
	owner string
}

// Registry is an append-only map from plugin name to T. A validation hook
// runs before every insertion. The zero value is an empty registry without
// validation.
type Registry[T any] struct {
	kind     Kind
	validate func(name string, value T) error
	entries  map[string]entry[T]
}

// New creates a registry of the given kind. validate may be nil.
func New[T any](kind Kind, validate func(name string, value T) error) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		validate: validate,
		entries:  make(map[string]entry[T]),
	}
}

// Kind returns the registry kind.
func (r *Registry[T]) Kind() Kind {
	return r.kind
}

// Register stores value under name. The validation hook runs first, then the
// name is checked for duplicates; on any error the registry is unchanged.
func (r *Registry[T]) Register(name string, value T) error {
	if r.validate != nil {
		if err := r.validate(name, value); err != nil {
			return err
		}
	}

	if prior, ok := r.entries[name]; ok {
		return &ConflictError{Kind: r.kind.Name, Name: name, PriorOwner: prior.owner}
	}

	if r.entries == nil {
		r.entries = make(map[string]entry[T])
	}
	r.entries[name] = entry[T]{value: value, owner: ownerOf(value)}

	return nil
}

// Lookup returns the value registered under name, or an *UnknownKindError
// listing the currently registered names.
func (r *Registry[T]) Lookup(name string) (T, error) {
	e, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, &UnknownKindError{Selector: r.kind.Selector, Name: name, Available: r.Names()}
	}
	return e.value, nil
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len reports the number of registered names.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Owner returns a description of the value registered under name.
func (r *Registry[T]) Owner(name string) (string, bool) {
	e, ok := r.entries[name]
	return e.owner, ok
}

// ownerOf describes a registered value: the function name for funcs, the
// dynamic type otherwise.
func ownerOf(value any) string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return fmt.Sprintf("%T", value)
}
