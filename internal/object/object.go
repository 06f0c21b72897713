// Package object implements ObjectIR's heap-allocated Object and Array
// values: field storage, reference counting, and the host-data slot native
// stdlib methods use to attach language-native state.
package object

import (
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/pkg/ident"
)

// Object is a runtime instance of a Class. Fields are keyed
// case-insensitively so that module producers spelling a field name with
// different casing still resolve to the same slot, mirroring the
// teacher's ObjectInstance.GetField/SetField normalization.
type Object struct {
	Class *module.Class

	fields *ident.Map[value.Value]

	// Base models inheritance layout as a back-pointer to a base-class
	// instance rather than flattening inherited fields into a single map.
	// Field lookup walks Base when a name misses locally.
	Base *Object

	// HostData is an opaque slot native stdlib methods (internal/hostlib)
	// attach language-native state to (e.g., a collection's backing
	// slice). The core never interprets it.
	HostData interface{}

	refCount int
}

// New creates an Object of class with all fields defaulted to null,
// chaining to a fresh Base instance for every ancestor class.
func New(class *module.Class) *Object {
	if class == nil {
		return &Object{fields: ident.NewMap[value.Value]()}
	}
	obj := &Object{Class: class, fields: ident.NewMap[value.Value]()}
	for _, f := range class.Fields {
		if !f.Static {
			obj.fields.Set(f.Name, value.Null)
		}
	}
	if class.BaseName != "" && class.Base() != nil {
		obj.Base = New(class.Base())
	}
	return obj
}

// ClassName implements value.Handle.
func (o *Object) ClassName() string {
	if o == nil || o.Class == nil {
		return "object"
	}
	return o.Class.QualifiedName()
}

// GetField looks up name on o, falling back to Base when o does not
// declare it directly — an object's own fields shadow its base's.
func (o *Object) GetField(name string) (value.Value, bool) {
	if o == nil {
		return value.Null, false
	}
	if v, ok := o.fields.Get(name); ok {
		return v, true
	}
	if o.Base != nil {
		return o.Base.GetField(name)
	}
	return value.Null, false
}

// SetField stores v under name, walking to Base if the field is declared
// there instead of on o directly.
func (o *Object) SetField(name string, v value.Value) bool {
	if o == nil {
		return false
	}
	if o.fields.Has(name) {
		o.fields.Set(name, v)
		return true
	}
	if o.Base != nil && o.Base.SetField(name, v) {
		return true
	}
	return false
}

// IncRef increments the reference count.
func (o *Object) IncRef() {
	if o != nil {
		o.refCount++
	}
}

// DecRef decrements the reference count and reports the count after
// decrementing. Cycles through field references are tolerated; this core
// performs no cycle collection, only counting.
func (o *Object) DecRef() int {
	if o == nil {
		return 0
	}
	if o.refCount > 0 {
		o.refCount--
	}
	return o.refCount
}

// RefCount returns the current reference count.
func (o *Object) RefCount() int {
	if o == nil {
		return 0
	}
	return o.refCount
}
