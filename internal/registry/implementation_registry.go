// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"reflect"

	"github.com/MKhiriev/oc-serve/internal/envbind"
)

// Factory builds an implementation from its bound configuration. env is the
// same snapshot the configuration was bound from, so a factory can resolve
// nested plugins.
type Factory[C Buildable, T any] func(cfg C, env envbind.Snapshot) (T, error)

// ImplementationRegistry maps a plugin name to a factory. Get resolves the
// configuration of the same name through its ConfigRegistry before calling
// the factory.
type ImplementationRegistry[C Buildable, T any] struct {
	*Registry[Factory[C, T]]
	configs *ConfigRegistry[C]
}

// NewImplementationRegistry creates an implementation registry backed by
// configs.
func NewImplementationRegistry[C Buildable, T any](kind Kind, configs *ConfigRegistry[C]) *ImplementationRegistry[C, T] {
	ir := &ImplementationRegistry[C, T]{configs: configs}
	ir.Registry = New(kind, ir.validateFactory)
	return ir
}

func (ir *ImplementationRegistry[C, T]) validateFactory(name string, factory Factory[C, T]) error {
	if factory == nil {
		return &InvalidPluginError{
			Kind:   ir.kind.Name,
			Name:   name,
			Type:   fmt.Sprintf("%T", factory),
			Reason: "factory is nil",
		}
	}
	return nil
}

// Configs returns the backing configuration registry.
func (ir *ImplementationRegistry[C, T]) Configs() *ConfigRegistry[C] {
	return ir.configs
}

// Get resolves the implementation registered under name: the factory is
// looked up, the configuration of the same name is bound from env, and the
// factory is called with it.
func (ir *ImplementationRegistry[C, T]) Get(name string, env envbind.Snapshot) (T, error) {
	var zero T

	factory, err := ir.Lookup(name)
	if err != nil {
		return zero, err
	}

	cfg, err := ir.configs.GetInstance(name, env)
	if err != nil {
		return zero, err
	}

	impl, err := factory(cfg, env)
	if err != nil {
		return zero, fmt.Errorf("build %s '%s': %w", ir.kind.Name, name, err)
	}

	return impl, nil
}

// Typed adapts a factory over a concrete configuration type CC to a factory
// over the interface C. The returned factory fails with ErrInvalidPlugin when
// the bound configuration is not a CC. A nil build yields a nil factory.
func Typed[C Buildable, CC Buildable, T any](build func(cfg CC, env envbind.Snapshot) (T, error)) Factory[C, T] {
	if build == nil {
		return nil
	}
	return func(cfg C, env envbind.Snapshot) (T, error) {
		concrete, ok := any(cfg).(CC)
		if !ok {
			var zero T
			return zero, &InvalidPluginError{
				Type:   fmt.Sprintf("%T", cfg),
				Reason: fmt.Sprintf("configuration is not a %s", reflect.TypeFor[CC]()),
			}
		}
		return build(concrete, env)
	}
}

// RegisterTyped registers build under name after checking that the
// configuration registered under the same name is a CC. The configuration
// must be registered first.
func RegisterTyped[C Buildable, CC Buildable, T any](ir *ImplementationRegistry[C, T], name string, build func(cfg CC, env envbind.Snapshot) (T, error)) error {
	want := reflect.TypeFor[CC]()
	if build == nil {
		return ir.Register(name, nil)
	}

	newConfig, err := ir.configs.Lookup(name)
	if err != nil {
		return &InvalidPluginError{
			Kind:   ir.kind.Name,
			Name:   name,
			Type:   want.String(),
			Reason: "no configuration registered under this name",
			Err:    err,
		}
	}
	if cfg := newConfig(); !isOf[CC](cfg) {
		return &InvalidPluginError{
			Kind:   ir.kind.Name,
			Name:   name,
			Type:   want.String(),
			Reason: fmt.Sprintf("factory takes %s, registered configuration is %T", want, cfg),
		}
	}

	return ir.Register(name, Typed[C](build))
}

func isOf[CC any](v any) bool {
	_, ok := v.(CC)
	return ok
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
