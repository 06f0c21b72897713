package hostlib

import (
	"bytes"
	"testing"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/staticstore"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
)

func newRegistry(t *testing.T) (*module.ClassRegistry, *bytes.Buffer) {
	t.Helper()
	registry := module.NewClassRegistry()
	var out bytes.Buffer
	RegisterAll(registry, staticstore.New(), &out)
	return registry, &out
}

func findMethod(t *testing.T, registry *module.ClassRegistry, className, methodName string, arity int) *module.Method {
	t.Helper()
	class, ok := registry.Lookup(className)
	if !ok {
		t.Fatalf("class %s not registered", className)
	}
	for i := range class.Methods {
		m := &class.Methods[i]
		if m.Name == methodName && len(m.Parameters) == arity {
			return m
		}
	}
	t.Fatalf("method %s.%s/%d not found", className, methodName, arity)
	return nil
}

func TestConsoleWriteLineString(t *testing.T) {
	registry, out := newRegistry(t)
	m := findMethod(t, registry, "System.Console", "WriteLine", 1)
	if _, err := m.Native(nil, []interface{}{value.String("hi")}, nil); err != nil {
		t.Fatalf("Native() error = %v", err)
	}
	if got := out.String(); got != "hi\n" {
		t.Errorf("output = %q", got)
	}
}

func TestMathSqrt(t *testing.T) {
	registry, _ := newRegistry(t)
	m := findMethod(t, registry, "System.Math", "Sqrt", 1)
	result, err := m.Native(nil, []interface{}{value.Float64(16)}, nil)
	if err != nil {
		t.Fatalf("Native() error = %v", err)
	}
	if got := result.(value.Value).AsFloat64(); got != 4 {
		t.Errorf("Sqrt(16) = %v, want 4", got)
	}
}

func TestStringConcat(t *testing.T) {
	registry, _ := newRegistry(t)
	m := findMethod(t, registry, "System.String", "Concat", 2)
	result, err := m.Native(nil, []interface{}{value.String("foo"), value.String("bar")}, nil)
	if err != nil {
		t.Fatalf("Native() error = %v", err)
	}
	if got := result.(value.Value).AsString(); got != "foobar" {
		t.Errorf("Concat = %q, want %q", got, "foobar")
	}
}

func TestConvertToInt32FromString(t *testing.T) {
	registry, _ := newRegistry(t)
	m := findMethod(t, registry, "System.Convert", "ToInt32", 1)
	result, err := m.Native(nil, []interface{}{value.String("42")}, nil)
	if err != nil {
		t.Fatalf("Native() error = %v", err)
	}
	if got := result.(value.Value).AsInt32(); got != 42 {
		t.Errorf("ToInt32(\"42\") = %v, want 42", got)
	}
}

func TestListAddCountContains(t *testing.T) {
	registry, _ := newRegistry(t)
	class, ok := registry.Lookup("System.Collections.List")
	if !ok {
		t.Fatal("List class not registered")
	}
	obj := object.New(class)

	add := findMethod(t, registry, "System.Collections.List", "Add", 1)
	if _, err := add.Native(obj, []interface{}{value.Int32(1)}, nil); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := add.Native(obj, []interface{}{value.Int32(2)}, nil); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	count := findMethod(t, registry, "System.Collections.List", "Count", 0)
	result, err := count.Native(obj, nil, nil)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if got := result.(value.Value).AsInt32(); got != 2 {
		t.Errorf("Count() = %v, want 2", got)
	}

	contains := findMethod(t, registry, "System.Collections.List", "Contains", 1)
	result, err = contains.Native(obj, []interface{}{value.Int32(1)}, nil)
	if err != nil {
		t.Fatalf("Contains() error = %v", err)
	}
	if !result.(value.Value).AsBool() {
		t.Error("Contains(1) = false, want true")
	}
}

func TestHashSetAddIsIdempotent(t *testing.T) {
	registry, _ := newRegistry(t)
	class, ok := registry.Lookup("System.Collections.HashSet")
	if !ok {
		t.Fatal("HashSet class not registered")
	}
	obj := object.New(class)
	add := findMethod(t, registry, "System.Collections.HashSet", "Add", 1)

	first, err := add.Native(obj, []interface{}{value.Int32(9)}, nil)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := add.Native(obj, []interface{}{value.Int32(9)}, nil)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !first.(value.Value).AsBool() {
		t.Error("first Add(9) = false, want true")
	}
	if second.(value.Value).AsBool() {
		t.Error("second Add(9) = true, want false (already present)")
	}
}
