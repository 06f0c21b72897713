// Package hostlib implements the host-function bridge's standard
// library: a console sink, string helpers, numeric conversions, math
// functions, and collection types, registered as ordinary Classes whose
// Methods carry a module.NativeFunc implementation instead of an
// instruction list.
package hostlib

import (
	"io"
	"strconv"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/staticstore"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// RegisterAll registers every built-in class into registry. output backs
// the console sink; statics seeds any host-defined static state (none at
// present, reserved for future built-ins that need it).
func RegisterAll(registry *module.ClassRegistry, statics *staticstore.Store, output io.Writer) {
	_ = statics
	for _, class := range []*module.Class{
		newConsoleClass(output),
		newMathClass(),
		newStringClass(),
		newConvertClass(),
		newListClass(),
		newDictionaryClass(),
		newQueueClass(),
		newStackClass(),
		newHashSetClass(),
	} {
		for i := range class.Methods {
			class.Methods[i].DeclaringClass = class
		}
		registry.Register(class)
	}
}

// arg resolves the i'th native argument, defaulting to null when absent.
func arg(args []interface{}, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.Null
	}
	v, ok := args[i].(value.Value)
	if !ok {
		return value.Null
	}
	return v
}

func staticMethod(name string, params []module.Parameter, ret module.TypeReference, fn module.NativeFunc) module.Method {
	return module.Method{
		Name:       name,
		Static:     true,
		Parameters: params,
		ReturnType: ret,
		Native:     fn,
	}
}

func instanceMethod(name string, params []module.Parameter, ret module.TypeReference, fn module.NativeFunc) module.Method {
	return module.Method{
		Name:       name,
		Virtual:    true,
		Parameters: params,
		ReturnType: ret,
		Native:     fn,
	}
}

func param(name, typeName string) module.Parameter {
	return module.Parameter{Name: name, Type: module.ParseTypeReference(typeName)}
}

func ret(typeName string) module.TypeReference {
	return module.ParseTypeReference(typeName)
}

// wrongArgCount is a defensive guard: overload resolution should already
// guarantee arity, but a misregistered signature would otherwise panic on
// args[i].
func wrongArgCount(name string, want, got int) error {
	return vmerrors.HostError(name + ": expected " + strconv.Itoa(want) + " arguments, got " + strconv.Itoa(got))
}
