package overload

import (
	"testing"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
)

func int32Ref() module.TypeReference  { return module.ParseTypeReference("int32") }
func stringRef() module.TypeReference { return module.ParseTypeReference("string") }
func voidRef() module.TypeReference   { return module.ParseTypeReference("void") }

func buildRegistry(t *testing.T, classes ...*module.Class) *module.ClassRegistry {
	t.Helper()
	m := module.NewModule("T", "1", classes)
	return m.Registry()
}

func TestResolveExactMatch(t *testing.T) {
	class := &module.Class{
		Name: "Math",
		Methods: []module.Method{
			{Name: "Sqrt", Static: true, Parameters: []module.Parameter{{Name: "x", Type: int32Ref()}}, ReturnType: int32Ref()},
			{Name: "Sqrt", Static: true, Parameters: []module.Parameter{{Name: "x", Type: module.ParseTypeReference("float64")}}, ReturnType: module.ParseTypeReference("float64")},
		},
	}
	registry := buildRegistry(t, class)
	r := NewResolver(registry)

	target := module.CallTarget{DeclaringType: "Math", Name: "Sqrt", ParameterTypes: []module.TypeReference{module.ParseTypeReference("float64")}}
	m, err := r.Resolve(target, Static)
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	if m.Parameters[0].Type.Name != "float64" {
		t.Errorf("resolved wrong overload: %+v", m.Parameters[0].Type)
	}
}

func TestResolveAmbiguousWithNoParameterTypes(t *testing.T) {
	class := &module.Class{
		Name: "Console",
		Methods: []module.Method{
			{Name: "Write", Static: true, Parameters: []module.Parameter{{Name: "s", Type: stringRef()}}, ReturnType: voidRef()},
			{Name: "Write", Static: true, Parameters: []module.Parameter{{Name: "i", Type: int32Ref()}}, ReturnType: voidRef()},
		},
	}
	registry := buildRegistry(t, class)
	r := NewResolver(registry)

	target := module.CallTarget{DeclaringType: "Console", Name: "Write"}
	if _, err := r.Resolve(target, Static); err == nil {
		t.Error("expected ambiguous-overload error when no parameterTypes given and multiple candidates exist")
	}
}

func TestResolveArityFallback(t *testing.T) {
	class := &module.Class{
		Name: "Legacy",
		Methods: []module.Method{
			{Name: "Foo", Static: true, Parameters: []module.Parameter{{Name: "a", Type: int32Ref()}}, ReturnType: voidRef()},
			{Name: "Foo", Static: true, Parameters: []module.Parameter{{Name: "a", Type: int32Ref()}, {Name: "b", Type: int32Ref()}}, ReturnType: voidRef()},
		},
	}
	registry := buildRegistry(t, class)
	r := NewResolver(registry)

	// Requested parameter type doesn't match exactly, and two candidates
	// share the name, but only one shares the arity (1).
	target := module.CallTarget{DeclaringType: "Legacy", Name: "Foo", ParameterTypes: []module.TypeReference{stringRef()}}
	m, err := r.Resolve(target, Static)
	if err != nil {
		t.Fatalf("expected arity fallback to succeed, got error: %v", err)
	}
	if m.Name != "Foo" || len(m.Parameters) != 1 {
		t.Errorf("resolved wrong method: %+v", m)
	}
}

func TestResolveStaticVsVirtualRestriction(t *testing.T) {
	class := &module.Class{
		Name: "Obj",
		Methods: []module.Method{
			{Name: "M", Static: true, ReturnType: voidRef()},
		},
	}
	registry := buildRegistry(t, class)
	r := NewResolver(registry)

	target := module.CallTarget{DeclaringType: "Obj", Name: "M"}
	if _, err := r.Resolve(target, Virtual); err == nil {
		t.Error("callvirt should not resolve a static-only method")
	}
}

func TestResolveClassNotFound(t *testing.T) {
	registry := buildRegistry(t)
	r := NewResolver(registry)
	if _, err := r.Resolve(module.CallTarget{DeclaringType: "Nope", Name: "M"}, Static); err == nil {
		t.Error("expected class-not-found error")
	}
}

func TestResolveIsDeterministicAndCached(t *testing.T) {
	class := &module.Class{
		Name: "Math",
		Methods: []module.Method{
			{Name: "Abs", Static: true, Parameters: []module.Parameter{{Name: "x", Type: int32Ref()}}, ReturnType: int32Ref()},
		},
	}
	registry := buildRegistry(t, class)
	r := NewResolver(registry)
	target := module.CallTarget{DeclaringType: "Math", Name: "Abs", ParameterTypes: []module.TypeReference{int32Ref()}}

	first, err := r.Resolve(target, Static)
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	second, err := r.Resolve(target, Static)
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	if first != second {
		t.Error("expected the same *Method pointer from the resolution cache")
	}
}
